package repository

import (
	"context"
	"errors"

	"github.com/scentara/perfume-api/models"
	"gorm.io/gorm"
)

type SocialAccountRepo struct{ db *gorm.DB }

func NewSocialAccountRepo(db *gorm.DB) *SocialAccountRepo { return &SocialAccountRepo{db: db} }

func (r *SocialAccountRepo) Create(ctx context.Context, a *models.SocialAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *SocialAccountRepo) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.SocialAccount, error) {
	var a models.SocialAccount
	err := r.db.WithContext(ctx).
		First(&a, "provider = ? AND provider_account_id = ?", provider, providerAccountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SocialAccountRepo) GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.SocialAccount, error) {
	var a models.SocialAccount
	err := r.db.WithContext(ctx).First(&a, "user_id = ? AND provider = ?", userID, provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SocialAccountRepo) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string) error {
	upd := map[string]any{"access_token": accessToken}
	if refreshToken != "" {
		upd["refresh_token"] = refreshToken
	}
	return r.db.WithContext(ctx).Model(&models.SocialAccount{}).Where("id = ?", id).Updates(upd).Error
}
