package services

import (
	"context"

	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartService struct {
	carts    CartRepository
	products ProductRepository
	log      *zap.Logger
}

func NewCartService(carts CartRepository, products ProductRepository, log *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

// CartView is the cart response: active lines priced live off the catalog.
type CartView struct {
	Items     []models.Cart   `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

func (s *CartService) Get(ctx context.Context, userID string) (*CartView, error) {
	items, err := s.carts.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: items, Total: decimal.Zero, Currency: "INR"}
	for i := range items {
		view.ItemCount += items[i].Quantity
		view.Total = view.Total.Add(items[i].Subtotal())
		if items[i].Product != nil {
			view.Currency = items[i].Product.Currency
		}
	}
	if view.Items == nil {
		view.Items = []models.Cart{}
	}
	return view, nil
}

// Add merges quantity into the user's line for the product. An EXPIRED
// remnant of a past order is reactivated with the new quantity because
// the (user, product) unique index leaves no room for a second row.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if !p.IsAvailable() {
		return nil, ErrProductInactive
	}

	item, err := s.carts.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	switch {
	case item == nil:
		if !p.CanFulfillQuantity(quantity) {
			return nil, ErrInsufficientStock
		}
		item = &models.Cart{
			ID:        models.NewID(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CartState: models.CartStateActive,
		}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, err
		}

	case !item.IsActive():
		if !p.CanFulfillQuantity(quantity) {
			return nil, ErrInsufficientStock
		}
		item.Quantity = quantity
		item.CartState = models.CartStateActive
		if err := s.carts.Save(ctx, item); err != nil {
			return nil, err
		}

	default:
		merged := item.Quantity + quantity
		if !p.CanFulfillQuantity(merged) {
			return nil, ErrInsufficientStock
		}
		item.Quantity = merged
		if err := s.carts.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	item.Product = p
	return item, nil
}

// Increment raises the line quantity by one, bounded by live stock.
func (s *CartService) Increment(ctx context.Context, userID, productID string) (*models.Cart, error) {
	item, err := s.carts.GetActiveItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	p := item.Product
	if p == nil {
		if p, err = s.products.GetByID(ctx, productID); err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrNotFound
		}
	}
	if !p.CanFulfillQuantity(item.Quantity + 1) {
		return nil, ErrInsufficientStock
	}

	item.Quantity++
	if err := s.carts.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Decrement lowers the line quantity by one and removes the line at zero.
func (s *CartService) Decrement(ctx context.Context, userID, productID string) (*models.Cart, error) {
	item, err := s.carts.GetActiveItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	item.Quantity--
	if item.Quantity <= 0 {
		if err := s.carts.Delete(ctx, item); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.carts.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveProduct drops the whole line regardless of quantity.
func (s *CartService) RemoveProduct(ctx context.Context, userID, productID string) error {
	item, err := s.carts.GetActiveItem(ctx, userID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.carts.Delete(ctx, item)
}

// Clear removes every active line. Expired lines stay for order history.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.DeleteActiveByUser(ctx, userID)
}
