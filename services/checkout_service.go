package services

import (
	"context"
	"net/http"

	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/payments"
	"go.uber.org/zap"
)

type CheckoutService struct {
	orders    OrderRepository
	payRepo   PaymentRepository
	providers map[models.PaymentProvider]payments.Provider
	log       *zap.Logger
}

func NewCheckoutService(
	orders OrderRepository,
	payRepo PaymentRepository,
	providers []payments.Provider,
	log *zap.Logger,
) *CheckoutService {
	byName := make(map[models.PaymentProvider]payments.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &CheckoutService{
		orders:    orders,
		payRepo:   payRepo,
		providers: byName,
		log:       log,
	}
}

// PaymentAttempt is the response to a payment-intent request.
type PaymentAttempt struct {
	Payment *models.Payment  `json:"payment"`
	Intent  *payments.Intent `json:"intent"`
}

// CreatePaymentIntent opens a payment attempt with the chosen gateway for
// an order still in a payable state. The order moves to PENDING; retries
// on a PENDING order create a fresh attempt.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, userID, orderID string, provider models.PaymentProvider) (*PaymentAttempt, error) {
	gw, ok := s.providers[provider]
	if !ok {
		return nil, ErrProviderMismatch
	}

	order, err := s.orders.GetByUserAndID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !order.CanBePaid() {
		return nil, ErrOrderNotPayable
	}

	intent, err := gw.CreateIntent(ctx, order)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:                models.NewID(),
		OrderID:           order.ID,
		Provider:          provider,
		ProviderPaymentID: intent.ProviderPaymentID,
		Status:            models.PaymentStatusPending,
		Amount:            order.TotalAmount,
		Currency:          order.Currency,
	}
	if err := s.payRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if order.Status == models.OrderStatusInitiated {
		if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPending); err != nil {
			return nil, err
		}
	}

	s.log.Info("payment intent created",
		zap.String("order_id", order.ID),
		zap.String("provider", string(provider)),
		zap.String("provider_payment_id", intent.ProviderPaymentID))
	return &PaymentAttempt{Payment: payment, Intent: intent}, nil
}

// HandleWebhook verifies and applies one gateway notification. A repeat
// delivery for an already-settled payment is a no-op.
func (s *CheckoutService) HandleWebhook(ctx context.Context, provider models.PaymentProvider, payload []byte, header http.Header) error {
	gw, ok := s.providers[provider]
	if !ok {
		return ErrProviderMismatch
	}

	event, err := gw.ParseWebhook(payload, header)
	if err != nil {
		return err
	}
	if event == nil {
		return nil
	}

	payment, err := s.payRepo.GetByProviderPaymentID(ctx, provider, event.ProviderPaymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrNotFound
	}
	if !payment.IsPending() {
		return nil
	}

	if event.Succeeded {
		payment.Status = models.PaymentStatusSucceeded
	} else {
		payment.Status = models.PaymentStatusFailed
	}
	payment.RawPayload = string(event.RawPayload)
	if err := s.payRepo.Update(ctx, payment); err != nil {
		return err
	}

	order, err := s.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrNotFound
	}
	if !order.IsTerminal() {
		status := models.OrderStatusFailure
		if event.Succeeded {
			status = models.OrderStatusSuccessful
		}
		if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
			return err
		}
	}

	s.log.Info("payment webhook applied",
		zap.String("order_id", payment.OrderID),
		zap.String("provider", string(provider)),
		zap.Bool("succeeded", event.Succeeded))
	return nil
}

func (s *CheckoutService) ListPayments(ctx context.Context, userID, orderID string) ([]models.Payment, error) {
	order, err := s.orders.GetByUserAndID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return s.payRepo.ListByOrder(ctx, order.ID)
}
