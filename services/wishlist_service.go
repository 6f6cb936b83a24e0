package services

import (
	"context"

	"github.com/scentara/perfume-api/models"
	"go.uber.org/zap"
)

type WishlistService struct {
	wishlists WishlistRepository
	products  ProductRepository
	log       *zap.Logger
}

func NewWishlistService(wishlists WishlistRepository, products ProductRepository, log *zap.Logger) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products, log: log}
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	items, err := s.wishlists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	existing, err := s.wishlists.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyWishlisted
	}

	item := &models.WishlistItem{
		ID:        models.NewID(),
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlists.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Product = p
	return item, nil
}

// Toggle flips membership: absent products are added, present ones
// removed. Returns the item when added, nil when removed.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	existing, err := s.wishlists.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, s.wishlists.Delete(ctx, existing)
	}
	return s.Add(ctx, userID, productID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	item, err := s.wishlists.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.wishlists.Delete(ctx, item)
}

func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	return s.wishlists.DeleteAllByUser(ctx, userID)
}
