package repository

import (
	"context"
	"errors"
	"time"

	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderTx is the slice of repository operations available inside the
// checkout transaction: order insert, item snapshot, cart-line expiry.
type OrderTx interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	ExpireCartLines(ctx context.Context, lineIDs []string, checkoutID string) error
}

type orderTx struct{ tx *gorm.DB }

func (t *orderTx) CreateOrder(ctx context.Context, o *models.Order) error {
	return t.tx.WithContext(ctx).Create(o).Error
}

func (t *orderTx) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return t.tx.WithContext(ctx).Create(&items).Error
}

// ExpireCartLines flips the consumed lines to EXPIRED and stamps them
// with the checkout id the order records as cart_id.
func (t *orderTx) ExpireCartLines(ctx context.Context, lineIDs []string, checkoutID string) error {
	if len(lineIDs) == 0 {
		return nil
	}
	return t.tx.WithContext(ctx).Model(&models.Cart{}).
		Where("id IN ?", lineIDs).
		Updates(map[string]any{
			"cart_state":  models.CartStateExpired,
			"checkout_id": checkoutID,
		}).Error
}

// WithTx runs fn inside one database transaction so a crash between the
// order insert and the cart expiry cannot leave a half-expired cart.
func (r *OrderRepo) WithTx(ctx context.Context, fn func(tx OrderTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderTx{tx: tx})
	})
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Preload("Items").Preload("Items.Product").
		First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) GetByUserAndID(ctx context.Context, userID, orderID string) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).Preload("Items").Preload("Items.Product").Preload("Address").
		First(&o, "user_id = ? AND id = ?", userID, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.Preload("Items").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&orders).Error
	return orders, count, err
}

func (r *OrderRepo) ListRecent(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.Preload("Items").Preload("Address").Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&orders).Error
	return orders, count, err
}

func (r *OrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.Preload("Items").Preload("Address").Order("updated_at DESC").
		Limit(limit).Offset(offset).Find(&orders).Error
	return orders, count, err
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *OrderRepo) UpdateAdminFields(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Updates(fields).Error
}

func (r *OrderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountSince counts orders created at or after since. A zero since counts
// every order.
func (r *OrderRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// SumRevenueSince totals order amounts created at or after since. A zero
// since sums every order.
func (r *OrderRepo) SumRevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}

	var total decimal.NullDecimal
	row := q.Select("SUM(total_amount)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
