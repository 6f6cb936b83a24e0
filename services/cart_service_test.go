package services

import (
	"context"
	"testing"

	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func perfume(id string, priceStr string, stock int) *models.Product {
	p, _ := decimal.NewFromString(priceStr)
	return &models.Product{
		ID:       id,
		Name:     "Test Perfume",
		Slug:     "test-perfume-" + id,
		Price:    p,
		Currency: "INR",
		Quantity: stock,
		IsActive: true,
	}
}

func cartServiceWith(carts *fakeCartRepo, products map[string]*models.Product) *CartService {
	prodRepo := &fakeProductRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Product, error) {
			return products[id], nil
		},
	}
	return NewCartService(carts, prodRepo, zap.NewNop())
}

func TestAddToCartNewLine(t *testing.T) {
	var created *models.Cart
	carts := &fakeCartRepo{
		GetItemFn: func(ctx context.Context, userID, productID string) (*models.Cart, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, item *models.Cart) error {
			created = item
			return nil
		},
	}
	svc := cartServiceWith(carts, map[string]*models.Product{"p1": perfume("p1", "2499.00", 10)})

	item, err := svc.Add(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, models.CartStateActive, item.CartState)
}

func TestAddToCartMergesQuantity(t *testing.T) {
	existing := &models.Cart{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 2, CartState: models.CartStateActive}
	var saved *models.Cart
	carts := &fakeCartRepo{
		GetItemFn: func(ctx context.Context, userID, productID string) (*models.Cart, error) {
			return existing, nil
		},
		SaveFn: func(ctx context.Context, item *models.Cart) error {
			saved = item
			return nil
		},
	}
	svc := cartServiceWith(carts, map[string]*models.Product{"p1": perfume("p1", "2499.00", 5)})

	item, err := svc.Add(context.Background(), "u1", "p1", 3)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 5, item.Quantity)

	// One more than stock fails.
	_, err = svc.Add(context.Background(), "u1", "p1", 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAddToCartReactivatesExpiredLine(t *testing.T) {
	expired := &models.Cart{
		ID: "c1", UserID: "u1", ProductID: "p1",
		Quantity: 4, CartState: models.CartStateExpired, CheckoutID: "old-batch",
	}
	var saved *models.Cart
	carts := &fakeCartRepo{
		GetItemFn: func(ctx context.Context, userID, productID string) (*models.Cart, error) {
			return expired, nil
		},
		SaveFn: func(ctx context.Context, item *models.Cart) error {
			saved = item
			return nil
		},
	}
	svc := cartServiceWith(carts, map[string]*models.Product{"p1": perfume("p1", "2499.00", 10)})

	item, err := svc.Add(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)
	require.NotNil(t, saved)

	// The remnant becomes a fresh line: quantity reset, not merged.
	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, models.CartStateActive, item.CartState)
}

func TestAddToCartInactiveProduct(t *testing.T) {
	inactive := perfume("p1", "999.00", 10)
	inactive.IsActive = false

	svc := cartServiceWith(&fakeCartRepo{}, map[string]*models.Product{"p1": inactive})
	_, err := svc.Add(context.Background(), "u1", "p1", 1)
	assert.ErrorIs(t, err, ErrProductInactive)

	svc = cartServiceWith(&fakeCartRepo{}, map[string]*models.Product{})
	_, err = svc.Add(context.Background(), "u1", "missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncrementBoundedByStock(t *testing.T) {
	line := &models.Cart{
		ID: "c1", UserID: "u1", ProductID: "p1",
		Quantity: 3, CartState: models.CartStateActive,
		Product: perfume("p1", "999.00", 3),
	}
	carts := &fakeCartRepo{
		GetActiveItemFn: func(ctx context.Context, userID, productID string) (*models.Cart, error) {
			return line, nil
		},
		SaveFn: func(ctx context.Context, item *models.Cart) error { return nil },
	}
	svc := cartServiceWith(carts, nil)

	_, err := svc.Increment(context.Background(), "u1", "p1")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, line.Quantity)
}

func TestDecrementRemovesAtZero(t *testing.T) {
	line := &models.Cart{
		ID: "c1", UserID: "u1", ProductID: "p1",
		Quantity: 1, CartState: models.CartStateActive,
	}
	deleted := false
	carts := &fakeCartRepo{
		GetActiveItemFn: func(ctx context.Context, userID, productID string) (*models.Cart, error) {
			return line, nil
		},
		DeleteFn: func(ctx context.Context, item *models.Cart) error {
			deleted = true
			return nil
		},
	}
	svc := cartServiceWith(carts, nil)

	item, err := svc.Decrement(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.True(t, deleted)
}

func TestGetCartTotals(t *testing.T) {
	p1 := perfume("p1", "2499.00", 10)
	p2 := perfume("p2", "4999.00", 10)
	carts := &fakeCartRepo{
		ListActiveByUserFn: func(ctx context.Context, userID string) ([]models.Cart, error) {
			return []models.Cart{
				{ID: "c1", ProductID: "p1", Quantity: 2, CartState: models.CartStateActive, Product: p1},
				{ID: "c2", ProductID: "p2", Quantity: 1, CartState: models.CartStateActive, Product: p2},
			}, nil
		},
	}
	svc := cartServiceWith(carts, nil)

	view, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, "9997.00", view.Total.StringFixed(2))
	assert.Equal(t, "INR", view.Currency)
}
