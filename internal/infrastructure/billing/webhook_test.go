package billing

import (
	"encoding/json"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signEvent(t *testing.T, event Event, secret []byte) string {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: secret}, nil)
	require.NoError(t, err)
	obj, err := signer.Sign(payload)
	require.NoError(t, err)
	token, err := obj.CompactSerialize()
	require.NoError(t, err)
	return token
}

func TestVerifyEventRoundTrip(t *testing.T) {
	secret := []byte("whsec_test_secret_0123456789abcdef")
	token := signEvent(t, Event{
		ID:            "evt_1",
		Type:          "checkout.completed",
		SessionID:     "cs_42",
		CustomerEmail: "user@example.com",
		Plan:          "pro",
	}, secret)

	event, err := VerifyEvent(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "checkout.completed", event.Type)
	assert.Equal(t, "cs_42", event.SessionID)
	assert.Equal(t, "user@example.com", event.CustomerEmail)
}

func TestVerifyEventRejectsWrongSecret(t *testing.T) {
	token := signEvent(t, Event{Type: "checkout.completed"}, []byte("whsec_right_secret_0123456789abc"))

	_, err := VerifyEvent(token, []byte("whsec_wrong_secret_0123456789abc"))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyEventRejectsGarbage(t *testing.T) {
	_, err := VerifyEvent("not.a.jws", []byte("whsec_secret"))
	require.Error(t, err)

	_, err = VerifyEvent("", []byte("whsec_secret"))
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestVerifyEventRequiresConfiguredSecret(t *testing.T) {
	token := signEvent(t, Event{Type: "checkout.completed"}, []byte("whsec_secret_0123456789abcdef012"))

	_, err := VerifyEvent(token, nil)
	require.Error(t, err)
}

func TestVerifyEventRequiresType(t *testing.T) {
	secret := []byte("whsec_secret_0123456789abcdef012")
	token := signEvent(t, Event{ID: "evt_1"}, secret)

	_, err := VerifyEvent(token, secret)
	require.Error(t, err)
}
