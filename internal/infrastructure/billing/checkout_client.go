package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Session is the provider's view of one checkout. It is never persisted here;
// the provider is the system of record.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email"`
	Plan          string `json:"plan"`
}

// CheckoutClient talks to the external payment provider. Failures carry the
// provider's diagnostic; there is no local retry, callers retry at the HTTP
// layer if they care.
type CheckoutClient struct {
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
	client     *http.Client
}

func NewCheckoutClient(baseURL, secretKey, successURL, cancelURL string) *CheckoutClient {
	return &CheckoutClient{
		baseURL:    baseURL,
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
		client:     &http.Client{},
	}
}

func (c *CheckoutClient) CreateSession(ctx context.Context, email, plan string) (*Session, error) {
	payload := map[string]string{
		"customer_email": email,
		"plan":           plan,
		"success_url":    c.successURL,
		"cancel_url":     c.cancelURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	// The provider deduplicates on this key if the HTTP layer retries us.
	req.Header.Set("Idempotency-Key", uuid.New().String())

	return c.do(req)
}

func (c *CheckoutClient) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(req)
}

func (c *CheckoutClient) do(req *http.Request) (*Session, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("checkout provider returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("checkout provider sent an unreadable session: %w", err)
	}
	if session.ID == "" {
		return nil, fmt.Errorf("checkout provider sent a session without an id")
	}
	return &session, nil
}
