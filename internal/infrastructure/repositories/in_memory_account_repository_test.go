package repositories

import (
	"sync"
	"sync/atomic"
	"testing"

	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutIfAbsentAndGet(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	err := repo.PutIfAbsent(&entities.Account{Email: "a@b.com", Password: "pw", Plan: "free"})
	require.NoError(t, err)

	account, err := repo.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", account.Email)
	assert.False(t, account.CreatedAt.IsZero())

	_, err = repo.Get("missing@b.com")
	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)
}

func TestPutIfAbsentDoesNotOverwrite(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	require.NoError(t, repo.PutIfAbsent(&entities.Account{Email: "a@b.com", Password: "first"}))
	err := repo.PutIfAbsent(&entities.Account{Email: "a@b.com", Password: "second"})
	assert.ErrorIs(t, err, repositories.ErrAccountExists)

	account, err := repo.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "first", account.Password)
}

func TestPutIfAbsentUnderConcurrentRegistration(t *testing.T) {
	repo := NewInMemoryAccountRepository()

	const goroutines = 50
	var wins int64
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			err := repo.PutIfAbsent(&entities.Account{Email: "race@b.com", Password: "pw"})
			if err == nil {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins)
}

func TestUpdatePlan(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	require.NoError(t, repo.PutIfAbsent(&entities.Account{Email: "a@b.com", Plan: "free"}))

	require.NoError(t, repo.UpdatePlan("a@b.com", "pro"))
	account, err := repo.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "pro", account.Plan)

	err = repo.UpdatePlan("ghost@b.com", "pro")
	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)
}

func TestGetReturnsACopy(t *testing.T) {
	repo := NewInMemoryAccountRepository()
	require.NoError(t, repo.PutIfAbsent(&entities.Account{Email: "a@b.com", Plan: "free"}))

	account, err := repo.Get("a@b.com")
	require.NoError(t, err)
	account.Plan = "hacked"

	fresh, err := repo.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "free", fresh.Plan)
}
