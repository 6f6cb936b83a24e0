package repository

import (
	"context"
	"errors"

	"github.com/scentara/perfume-api/models"
	"gorm.io/gorm"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

// GetItem returns the single (user, product) line regardless of state.
// The unique index keeps at most one row per pair, so an EXPIRED remnant
// blocks inserts and must be reactivated instead.
func (r *CartRepo) GetItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	var item models.Cart
	err := r.db.WithContext(ctx).
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) GetActiveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	var item models.Cart
	err := r.db.WithContext(ctx).Preload("Product").
		First(&item, "user_id = ? AND product_id = ? AND cart_state = ?",
			userID, productID, models.CartStateActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) ListActiveByUser(ctx context.Context, userID string) ([]models.Cart, error) {
	var items []models.Cart
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ? AND cart_state = ?", userID, models.CartStateActive).
		Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *CartRepo) Create(ctx context.Context, item *models.Cart) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CartRepo) Save(ctx context.Context, item *models.Cart) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CartRepo) Delete(ctx context.Context, item *models.Cart) error {
	return r.db.WithContext(ctx).Delete(item).Error
}

func (r *CartRepo) DeleteActiveByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND cart_state = ?", userID, models.CartStateActive).
		Delete(&models.Cart{}).Error
}
