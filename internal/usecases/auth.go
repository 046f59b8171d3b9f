package usecases

import (
	"crypto/subtle"
	stderrors "errors"
	"strings"

	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"
	"makecut/pkg/constants"
	"makecut/pkg/errors"
	"makecut/pkg/helper"
)

type AccountService interface {
	Register(email, password string) error
	Login(email, password string) (*entities.Account, error)
}

type accountService struct {
	repo repositories.AccountRepository
}

func NewAccountService(repo repositories.AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Register(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !helper.IsValidEmail(email) {
		return errors.ErrInvalidRequest("A valid email is required")
	}
	if password == "" {
		return errors.ErrInvalidRequest("A password is required")
	}

	account := &entities.Account{
		Email:    email,
		Password: password,
		Plan:     constants.PlanFree,
	}

	if err := s.repo.PutIfAbsent(account); err != nil {
		if stderrors.Is(err, repositories.ErrAccountExists) {
			return errors.ErrDuplicateEmail()
		}
		return errors.ErrInternal(err)
	}
	return nil
}

// Login compares credentials in constant time and returns the same error for
// an unknown email and a wrong password, so the response does not reveal
// which one it was.
func (s *accountService) Login(email, password string) (*entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.repo.Get(email)
	if err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			// Burn a comparison anyway to keep latency flat.
			subtle.ConstantTimeCompare([]byte(password), []byte("placeholder-password"))
			return nil, errors.ErrInvalidCredentials()
		}
		return nil, errors.ErrInternal(err)
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, errors.ErrInvalidCredentials()
	}
	return account, nil
}
