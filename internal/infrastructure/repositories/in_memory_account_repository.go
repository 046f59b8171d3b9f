package repositories

import (
	"sync"
	"time"

	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"
)

// InMemoryAccountRepository is the default account store: a process-wide map,
// empty at startup, gone at shutdown. The mutex around PutIfAbsent is the one
// shared-mutable-state guard the system needs; without it two concurrent
// registrations for the same email could both succeed.
type InMemoryAccountRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.Account
}

func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		data: make(map[string]*entities.Account),
	}
}

func (r *InMemoryAccountRepository) Get(email string) (*entities.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, exists := r.data[email]
	if !exists {
		return nil, repositories.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *InMemoryAccountRepository) PutIfAbsent(account *entities.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[account.Email]; exists {
		return repositories.ErrAccountExists
	}
	now := time.Now()
	stored := *account
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.data[account.Email] = &stored
	return nil
}

func (r *InMemoryAccountRepository) UpdatePlan(email, plan string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, exists := r.data[email]
	if !exists {
		return repositories.ErrAccountNotFound
	}
	account.Plan = plan
	account.UpdatedAt = time.Now()
	return nil
}
