package dto

type CreateCheckoutSessionRequestDTO struct {
	Email string `json:"email" form:"email"`
	Plan  string `json:"plan" form:"plan"`
}

type CheckoutSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Status    string `json:"status,omitempty"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
