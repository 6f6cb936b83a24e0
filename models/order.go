package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// INITIATED -> PENDING -> SUCCESSFUL, or INITIATED/PENDING -> FAILURE.
	// FAILURE doubles as the admin-cancellation terminal state.
	OrderStatusInitiated  OrderStatus = "INITIATED"
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusSuccessful OrderStatus = "SUCCESSFUL"
	OrderStatusFailure    OrderStatus = "FAILURE"
)

type Order struct {
	ID          string          `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      *string         `gorm:"type:char(36);index" json:"user_id,omitempty"`
	AddressID   *string         `gorm:"type:char(36)" json:"address_id,omitempty"`
	CartID      string          `gorm:"type:char(36)" json:"cart_id,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Currency    string          `gorm:"size:3;not null;default:'INR'" json:"currency"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'INITIATED';index" json:"status"`

	ShippingID string `gorm:"size:100" json:"shipping_id,omitempty"`
	AdminNotes string `gorm:"type:text" json:"admin_notes,omitempty"`
	SpamOrder  bool   `gorm:"not null;default:false" json:"spam_order"`

	Address  *Address    `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL" json:"address,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanBePaid reports whether a payment attempt may be made for this order.
func (o *Order) CanBePaid() bool {
	return o.Status == OrderStatusInitiated || o.Status == OrderStatusPending
}

func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusSuccessful || o.Status == OrderStatusFailure
}

// OrderItem freezes product id, quantity and unit price at order-creation
// time, immune to later catalog price changes.
type OrderItem struct {
	ID        string          `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID   string          `gorm:"type:char(36);not null;index" json:"order_id"`
	ProductID string          `gorm:"type:char(36);not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
