package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartState string

const (
	// ACTIVE lines are open for mutation. EXPIRED lines are historical
	// remnants of a placed order, retained rather than deleted so the
	// order keeps its cart linkage.
	CartStateActive  CartState = "ACTIVE"
	CartStateExpired CartState = "EXPIRED"
)

// Cart is one line item: at most one row per (user, product).
type Cart struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID string    `gorm:"type:char(36);not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CartState CartState `gorm:"type:varchar(10);not null;default:'ACTIVE';index" json:"cart_state"`

	// CheckoutID links an EXPIRED line to the order that consumed it
	// (orders.cart_id). Empty while the line is ACTIVE.
	CheckoutID string `gorm:"type:char(36);index" json:"checkout_id,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Cart) IsActive() bool {
	return c.CartState == CartStateActive
}

// Subtotal is quantity times the product's live price. Cart lines carry no
// frozen price; the snapshot happens only at order creation.
func (c *Cart) Subtotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}
	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
