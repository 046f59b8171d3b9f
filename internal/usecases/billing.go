package usecases

import (
	"context"
	stderrors "errors"
	"log"
	"strings"

	"makecut/internal/domain/dto"
	"makecut/internal/domain/repositories"
	"makecut/internal/infrastructure/billing"
	"makecut/pkg/constants"
	"makecut/pkg/errors"
)

// CheckoutService fronts the external payment provider. Sessions live on the
// provider side; this service only creates them, looks them up and applies
// the plan changes announced by signed webhook events.
type CheckoutService interface {
	CreateSession(ctx context.Context, email, plan string) (*dto.CheckoutSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.CheckoutSessionResponse, error)
	HandleEvent(event *billing.Event) error
}

type checkoutService struct {
	client   *billing.CheckoutClient
	accounts repositories.AccountRepository
}

func NewCheckoutService(client *billing.CheckoutClient, accounts repositories.AccountRepository) CheckoutService {
	return &checkoutService{client: client, accounts: accounts}
}

func (s *checkoutService) CreateSession(ctx context.Context, email, plan string) (*dto.CheckoutSessionResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.ErrInvalidRequest("An email is required")
	}
	if plan != constants.PlanPro {
		return nil, errors.ErrInvalidRequest("Unknown plan: " + plan)
	}

	session, err := s.client.CreateSession(ctx, email, plan)
	if err != nil {
		return nil, errors.ErrRemoteService(err)
	}

	return &dto.CheckoutSessionResponse{
		Success:   true,
		SessionID: session.ID,
		URL:       session.URL,
		Status:    session.Status,
	}, nil
}

func (s *checkoutService) GetSession(ctx context.Context, sessionID string) (*dto.CheckoutSessionResponse, error) {
	if sessionID == "" {
		return nil, errors.ErrInvalidRequest("A session id is required")
	}

	session, err := s.client.GetSession(ctx, sessionID)
	if err != nil {
		return nil, errors.ErrRemoteService(err)
	}

	return &dto.CheckoutSessionResponse{
		Success:   true,
		SessionID: session.ID,
		URL:       session.URL,
		Status:    session.Status,
	}, nil
}

// HandleEvent applies one verified provider event. Unknown event types are
// acknowledged and ignored so the provider does not keep redelivering them.
func (s *checkoutService) HandleEvent(event *billing.Event) error {
	switch event.Type {
	case constants.EventCheckoutCompleted:
		return s.updatePlan(event.CustomerEmail, constants.PlanPro)
	case constants.EventSubscriptionCancelled:
		return s.updatePlan(event.CustomerEmail, constants.PlanFree)
	default:
		log.Printf("ignoring webhook event type %q", event.Type)
		return nil
	}
}

func (s *checkoutService) updatePlan(email, plan string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.accounts.UpdatePlan(email, plan); err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			// The provider can complete checkout for an account this process
			// has never seen (in-memory store, restarts). Acknowledge it.
			log.Printf("webhook for unknown account %q, dropping", email)
			return nil
		}
		return errors.ErrInternal(err)
	}
	return nil
}
