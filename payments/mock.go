package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scentara/perfume-api/models"
)

// MockProvider simulates a gateway for local development and demos.
// Intents are issued immediately and webhooks are plain JSON without a
// signature, so it must never be registered in production.
type MockProvider struct{}

func NewMockProvider() *MockProvider { return &MockProvider{} }

func (p *MockProvider) Name() models.PaymentProvider { return models.PaymentProviderMock }

func (p *MockProvider) CreateIntent(ctx context.Context, o *models.Order) (*Intent, error) {
	return &Intent{
		ProviderPaymentID: "mock_" + models.NewID(),
		ClientSecret:      models.NewID(),
		Amount:            minorUnits(o),
		Currency:          o.Currency,
	}, nil
}

type mockWebhookBody struct {
	Event             string `json:"event"`
	ProviderPaymentID string `json:"provider_payment_id"`
}

func (p *MockProvider) ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	var body mockWebhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("mock webhook: %w", err)
	}

	switch body.Event {
	case "payment.succeeded", "payment.failed":
	default:
		return nil, nil
	}
	if body.ProviderPaymentID == "" {
		return nil, fmt.Errorf("mock webhook: provider_payment_id is required")
	}

	return &WebhookEvent{
		ProviderPaymentID: body.ProviderPaymentID,
		Succeeded:         body.Event == "payment.succeeded",
		RawPayload:        payload,
	}, nil
}
