package repositories

import (
	"context"
	"encoding/json"
	"time"

	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"

	"github.com/go-redis/redis/v8"
)

const accountKeyPrefix = "account:"

// RedisAccountRepository keeps accounts in redis. SETNX gives the same
// duplicate-registration atomicity the memory driver gets from its mutex.
type RedisAccountRepository struct {
	rdb *redis.Client
}

func NewRedisAccountRepository(rdb *redis.Client) *RedisAccountRepository {
	return &RedisAccountRepository{rdb: rdb}
}

func (r *RedisAccountRepository) Get(email string) (*entities.Account, error) {
	val, err := r.rdb.Get(context.Background(), accountKeyPrefix+email).Result()
	if err == redis.Nil {
		return nil, repositories.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	var account entities.Account
	if err := json.Unmarshal([]byte(val), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *RedisAccountRepository) PutIfAbsent(account *entities.Account) error {
	now := time.Now()
	stored := *account
	stored.CreatedAt = now
	stored.UpdatedAt = now

	serialized, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	ok, err := r.rdb.SetNX(context.Background(), accountKeyPrefix+stored.Email, serialized, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return repositories.ErrAccountExists
	}
	return nil
}

func (r *RedisAccountRepository) UpdatePlan(email, plan string) error {
	account, err := r.Get(email)
	if err != nil {
		return err
	}
	account.Plan = plan
	account.UpdatedAt = time.Now()

	serialized, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return r.rdb.Set(context.Background(), accountKeyPrefix+email, serialized, 0).Err()
}
