package repositories

import (
	stderrors "errors"
	"time"

	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"

	"gorm.io/gorm"
)

// PostgresAccountRepository backs the account store with a real database.
// The primary key on email makes PutIfAbsent atomic at the database level.
type PostgresAccountRepository struct {
	db *gorm.DB
}

func NewPostgresAccountRepository(db *gorm.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Get(email string) (*entities.Account, error) {
	var account entities.Account
	if err := r.db.First(&account, "email = ?", email).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *PostgresAccountRepository) PutIfAbsent(account *entities.Account) error {
	now := time.Now()
	stored := *account
	stored.CreatedAt = now
	stored.UpdatedAt = now

	err := r.db.Create(&stored).Error
	if err != nil && stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.ErrAccountExists
	}
	return err
}

func (r *PostgresAccountRepository) UpdatePlan(email, plan string) error {
	res := r.db.Model(&entities.Account{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"plan": plan, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrAccountNotFound
	}
	return nil
}
