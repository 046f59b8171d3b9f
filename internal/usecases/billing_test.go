package usecases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"makecut/internal/domain/entities"
	"makecut/internal/infrastructure/billing"
	infra_repo "makecut/internal/infrastructure/repositories"
	"makecut/pkg/constants"
	"makecut/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionValidation(t *testing.T) {
	client := billing.NewCheckoutClient("http://unreachable.invalid", "sk", "", "")
	svc := NewCheckoutService(client, infra_repo.NewInMemoryAccountRepository())

	_, err := svc.CreateSession(context.Background(), "", constants.PlanPro)
	require.Error(t, err)

	_, err = svc.CreateSession(context.Background(), "user@example.com", "platinum")
	require.Error(t, err)
	ae, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeInvalidRequest, ae.Code)
}

func TestCreateSessionDelegatesToProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id": "cs_1", "url": "https://pay.example.com/cs_1", "status": "open",
		})
	}))
	defer srv.Close()

	client := billing.NewCheckoutClient(srv.URL, "sk", "", "")
	svc := NewCheckoutService(client, infra_repo.NewInMemoryAccountRepository())

	resp, err := svc.CreateSession(context.Background(), "user@example.com", constants.PlanPro)
	require.NoError(t, err)
	assert.Equal(t, "cs_1", resp.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_1", resp.URL)
}

func TestHandleEventUpgradesAndDowngrades(t *testing.T) {
	repo := infra_repo.NewInMemoryAccountRepository()
	require.NoError(t, repo.PutIfAbsent(&entities.Account{
		Email: "user@example.com", Password: "pw", Plan: constants.PlanFree,
	}))
	svc := NewCheckoutService(billing.NewCheckoutClient("http://unused.invalid", "sk", "", ""), repo)

	err := svc.HandleEvent(&billing.Event{
		Type:          constants.EventCheckoutCompleted,
		CustomerEmail: "user@example.com",
	})
	require.NoError(t, err)
	account, err := repo.Get("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, constants.PlanPro, account.Plan)

	err = svc.HandleEvent(&billing.Event{
		Type:          constants.EventSubscriptionCancelled,
		CustomerEmail: "user@example.com",
	})
	require.NoError(t, err)
	account, err = repo.Get("user@example.com")
	require.NoError(t, err)
	assert.Equal(t, constants.PlanFree, account.Plan)
}

func TestHandleEventToleratesUnknownAccountAndType(t *testing.T) {
	svc := NewCheckoutService(billing.NewCheckoutClient("http://unused.invalid", "sk", "", ""),
		infra_repo.NewInMemoryAccountRepository())

	// An account this process never saw (memory store, restarts) is dropped,
	// not retried forever by the provider.
	err := svc.HandleEvent(&billing.Event{
		Type:          constants.EventCheckoutCompleted,
		CustomerEmail: "ghost@example.com",
	})
	assert.NoError(t, err)

	err = svc.HandleEvent(&billing.Event{Type: "invoice.paid"})
	assert.NoError(t, err)
}
