package constants

const (
	StatusOK     = "ok"
	StatusStored = "stored"
	StatusFailed = "failed"
)

// Plan tiers known to the account store.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Webhook event types sent by the checkout provider.
const (
	EventCheckoutCompleted     = "checkout.completed"
	EventSubscriptionCancelled = "subscription.cancelled"
)

// Multipart field names accepted by the video endpoints.
const (
	FieldVideo = "video"
	FieldCuts  = "cuts"
)
