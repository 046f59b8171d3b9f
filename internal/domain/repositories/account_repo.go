package repositories

import (
	"errors"

	"makecut/internal/domain/entities"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository is the injected account store. The in-memory driver is the
// default; redis and postgres drivers can be swapped in without touching the
// request-handling logic. PutIfAbsent must be atomic under concurrent
// registration with the same email.
type AccountRepository interface {
	Get(email string) (*entities.Account, error)
	PutIfAbsent(account *entities.Account) error
	UpdatePlan(email, plan string) error
}
