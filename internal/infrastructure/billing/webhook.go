package billing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v4"
)

var (
	ErrInvalidEvent     = errors.New("invalid webhook event format")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Event is one provider notification, delivered as a compact HS256 JWS whose
// payload is the event JSON.
type Event struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	SessionID     string `json:"session_id"`
	CustomerEmail string `json:"customer_email"`
	Plan          string `json:"plan"`
}

// VerifyEvent checks the JWS signature against the shared webhook secret and
// decodes the payload. Only HS256 is accepted.
func VerifyEvent(token string, secret []byte) (*Event, error) {
	if token == "" {
		return nil, ErrInvalidEvent
	}
	if len(secret) == 0 {
		return nil, errors.New("no webhook signing secret configured")
	}

	jws, err := jose.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	payload, err := jws.Verify(secret)
	if err != nil {
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrInvalidEvent)
	}
	return &event, nil
}
