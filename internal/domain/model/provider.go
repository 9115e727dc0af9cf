package model

// PaymentIntentHandle is the provider-issued handle for an in-progress card
// payment. ClientSecret is opaque and passed through to the customer.
type PaymentIntentHandle struct {
	ID           string
	ClientSecret string
}

// ProviderPaymentStatus mirrors the payment provider's view of an intent.
type ProviderPaymentStatus string

const (
	ProviderPaymentSucceeded ProviderPaymentStatus = "succeeded"
	ProviderPaymentPending   ProviderPaymentStatus = "pending"
	ProviderPaymentFailed    ProviderPaymentStatus = "failed"
)
