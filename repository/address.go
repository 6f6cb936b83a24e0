package repository

import (
	"context"
	"errors"

	"github.com/scentara/perfume-api/models"
	"gorm.io/gorm"
)

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Create(ctx context.Context, a *models.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AddressRepo) GetByUserAndID(ctx context.Context, userID, addressID string) (*models.Address, error) {
	var a models.Address
	err := r.db.WithContext(ctx).First(&a, "user_id = ? AND id = ?", userID, addressID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByUserAndHash finds an address with the same dedup hash, optionally
// excluding one row id (used when updating that row in place).
func (r *AddressRepo) GetByUserAndHash(ctx context.Context, userID, hash, excludeID string) (*models.Address, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND address_hash = ?", userID, hash)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var a models.Address
	err := q.First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) ListByUser(ctx context.Context, userID string) ([]models.Address, error) {
	var addrs []models.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepo) Update(ctx context.Context, a *models.Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AddressRepo) Delete(ctx context.Context, a *models.Address) error {
	return r.db.WithContext(ctx).Delete(a).Error
}
