package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
	"github.com/scentara/perfume-api/models"
)

// RazorpayProvider creates Razorpay orders and verifies webhook signatures.
// The Razorpay order id is stored as the provider payment id; webhooks map
// back through payment.entity.order_id.
type RazorpayProvider struct {
	client        *razorpay.Client
	keyID         string
	webhookSecret string
}

func NewRazorpayProvider(keyID, keySecret, webhookSecret string) *RazorpayProvider {
	return &RazorpayProvider{
		client:        razorpay.NewClient(keyID, keySecret),
		keyID:         keyID,
		webhookSecret: webhookSecret,
	}
}

func (r *RazorpayProvider) Name() models.PaymentProvider {
	return models.PaymentProviderRazorpay
}

func (r *RazorpayProvider) CreateIntent(_ context.Context, o *models.Order) (*Intent, error) {
	data := map[string]interface{}{
		"amount":   minorUnits(o),
		"currency": o.Currency,
		"receipt":  o.ID,
		"notes":    map[string]interface{}{"order_id": o.ID},
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: missing id in response")
	}

	return &Intent{
		ProviderPaymentID: id,
		CheckoutKeyID:     r.keyID,
		Amount:            minorUnits(o),
		Currency:          o.Currency,
	}, nil
}

type razorpayWebhook struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (r *RazorpayProvider) ParseWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	signature := header.Get("X-Razorpay-Signature")
	if !utils.VerifyWebhookSignature(string(payload), signature, r.webhookSecret) {
		return nil, fmt.Errorf("razorpay webhook signature mismatch")
	}

	var event razorpayWebhook
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("razorpay webhook payload: %w", err)
	}

	switch event.Event {
	case "payment.captured", "payment.failed":
	default:
		return nil, nil
	}

	return &WebhookEvent{
		ProviderPaymentID: event.Payload.Payment.Entity.OrderID,
		Succeeded:         event.Event == "payment.captured",
		RawPayload:        payload,
	}, nil
}
