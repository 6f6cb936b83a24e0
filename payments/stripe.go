package payments

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/scentara/perfume-api/models"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeProvider creates PaymentIntents and verifies Stripe webhooks.
type StripeProvider struct {
	webhookSecret string
}

func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (s *StripeProvider) Name() models.PaymentProvider {
	return models.PaymentProviderStripe
}

func (s *StripeProvider) CreateIntent(ctx context.Context, o *models.Order) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits(o)),
		Currency: stripe.String(strings.ToLower(o.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_id", o.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create intent: %w", err)
	}

	return &Intent{
		ProviderPaymentID: pi.ID,
		ClientSecret:      pi.ClientSecret,
		Amount:            pi.Amount,
		Currency:          o.Currency,
	}, nil
}

func (s *StripeProvider) ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, header.Get("Stripe-Signature"), s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe webhook signature: %w", err)
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
	default:
		return nil, nil
	}

	var pi stripe.PaymentIntent
	if err := pi.UnmarshalJSON(event.Data.Raw); err != nil {
		return nil, fmt.Errorf("stripe webhook payload: %w", err)
	}

	return &WebhookEvent{
		ProviderPaymentID: pi.ID,
		Succeeded:         event.Type == "payment_intent.succeeded",
		RawPayload:        payload,
	}, nil
}
