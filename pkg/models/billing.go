package models

// CheckoutRequest represents a request to create a checkout session.
// Exactly one of OrganizationID or TeamID must be set.
type CheckoutRequest struct {
	Plan           string `json:"plan" validate:"required,oneof=basic pro elite"`
	OrganizationID *int   `json:"organizationId,omitempty"`
	TeamID         *int   `json:"teamId,omitempty"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// SubscriptionInfo represents subscription information
type SubscriptionInfo struct {
	ID               int    `json:"id"`
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	CurrentPeriodEnd string `json:"current_period_end,omitempty"`
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}

// BillingStatusResponse represents the billing status of an organization
type BillingStatusResponse struct {
	OrganizationID int               `json:"organizationId"`
	Subscription   *SubscriptionInfo `json:"subscription"`
}

// CheckoutSessionInfo represents a persisted checkout session
type CheckoutSessionInfo struct {
	ID         string `json:"id"`
	TargetType string `json:"target_type"`
	TargetID   int    `json:"target_id"`
	Plan       string `json:"plan"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	URL        string `json:"url,omitempty"`
}

// TransactionInfo represents a payment ledger entry
type TransactionInfo struct {
	ID              int    `json:"id"`
	SubscriptionID  int    `json:"subscription_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          string `json:"status"`
	StripePaymentID string `json:"stripe_payment_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// WebhookReceivedResponse is the acknowledgement body for Stripe webhooks
type WebhookReceivedResponse struct {
	Received bool `json:"received"`
}
