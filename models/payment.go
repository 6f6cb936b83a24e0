package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentProvider string
type PaymentStatus string

const (
	PaymentProviderStripe   PaymentProvider = "stripe"
	PaymentProviderRazorpay PaymentProvider = "razorpay"
	PaymentProviderMock     PaymentProvider = "mock"

	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSucceeded PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment is one provider-attributed payment attempt. An order may carry
// several attempts (retries).
type Payment struct {
	ID                string          `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID           string          `gorm:"type:char(36);not null;index" json:"order_id"`
	Provider          PaymentProvider `gorm:"type:varchar(50);not null;index:idx_payment_provider_id" json:"provider"`
	ProviderPaymentID string          `gorm:"size:255;index:idx_payment_provider_id" json:"provider_payment_id,omitempty"`
	Status            PaymentStatus   `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency          string          `gorm:"size:3;not null;default:'INR'" json:"currency"`
	RawPayload        string          `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}
