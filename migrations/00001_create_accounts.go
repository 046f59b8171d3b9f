package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

func Up(tx *sql.Tx) error {
	createAccountsTable := `
	CREATE TABLE IF NOT EXISTS accounts (
		email VARCHAR(255) PRIMARY KEY,
		password VARCHAR(255) NOT NULL,
		plan VARCHAR(20) NOT NULL DEFAULT 'free',
		videos_processed BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createAccountsTable); err != nil {
		return fmt.Errorf("could not create accounts table: %w", err)
	}
	return nil
}

func Down(tx *sql.Tx) error {
	if _, err := tx.Exec("DROP TABLE IF EXISTS accounts;"); err != nil {
		return fmt.Errorf("could not drop accounts table: %w", err)
	}
	return nil
}
