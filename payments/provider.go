package payments

import (
	"context"
	"net/http"

	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Intent is the provider-side handle a client needs to complete payment.
// ClientSecret is set for Stripe, CheckoutKeyID for Razorpay.
type Intent struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	ClientSecret      string `json:"client_secret,omitempty"`
	CheckoutKeyID     string `json:"checkout_key_id,omitempty"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
}

// WebhookEvent is the normalized result of a verified provider webhook.
type WebhookEvent struct {
	ProviderPaymentID string
	Succeeded         bool
	RawPayload        []byte
}

// Provider abstracts one payment gateway.
type Provider interface {
	Name() models.PaymentProvider
	CreateIntent(ctx context.Context, o *models.Order) (*Intent, error)
	// ParseWebhook verifies the signature and normalizes the event. Events
	// the gateway sends but the backend does not act on return (nil, nil).
	ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error)
}

// minorUnits converts a major-unit decimal amount to the gateway's integer
// minor units (paise for INR, cents for USD).
func minorUnits(o *models.Order) int64 {
	return o.TotalAmount.Mul(hundred).IntPart()
}
