package db

import (
	"fmt"

	"makecut/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which PutIfAbsent relies on.
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}
