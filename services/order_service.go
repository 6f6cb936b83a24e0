package services

import (
	"context"

	"github.com/scentara/perfume-api/models"
	"github.com/scentara/perfume-api/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	products  ProductRepository
	addresses AddressRepository
	log       *zap.Logger
}

func NewOrderService(
	orders OrderRepository,
	carts CartRepository,
	products ProductRepository,
	addresses AddressRepository,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		addresses: addresses,
		log:       log,
	}
}

// CreateFromCart snapshots the user's active cart into an INITIATED order.
// Unit prices are frozen at the catalog price of this moment, the order
// total is the sum over the snapshot, and the cart lines flip to EXPIRED
// in the same transaction as the order insert. Stock is checked but not
// decremented here.
func (s *OrderService) CreateFromCart(ctx context.Context, userID, addressID string) (*models.Order, error) {
	lines, err := s.carts.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoActiveItems
	}

	var addrID *string
	if addressID != "" {
		addr, err := s.addresses.GetByUserAndID(ctx, userID, addressID)
		if err != nil {
			return nil, err
		}
		if addr == nil {
			return nil, ErrNotFound
		}
		addrID = &addr.ID
	}

	orderID := models.NewID()
	total := decimal.Zero
	currency := "INR"
	items := make([]models.OrderItem, 0, len(lines))
	lineIDs := make([]string, 0, len(lines))

	for i := range lines {
		line := &lines[i]
		p := line.Product
		if p == nil || !p.IsActive {
			return nil, ErrProductInactive
		}
		if !p.CanFulfillQuantity(line.Quantity) {
			return nil, ErrInsufficientStock
		}

		items = append(items, models.OrderItem{
			ID:        models.NewID(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		currency = p.Currency
		lineIDs = append(lineIDs, line.ID)
	}

	// CartID tags the batch of cart lines this order consumed; the same
	// id is stamped onto the expired lines as checkout_id.
	checkoutID := models.NewID()
	order := &models.Order{
		ID:          orderID,
		UserID:      &userID,
		AddressID:   addrID,
		CartID:      checkoutID,
		TotalAmount: total,
		Currency:    currency,
		Status:      models.OrderStatusInitiated,
	}

	err = s.orders.WithTx(ctx, func(tx repository.OrderTx) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return err
		}
		return tx.ExpireCartLines(ctx, lineIDs, checkoutID)
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("total", total.StringFixed(2)))
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	o, err := s.orders.GetByUserAndID(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context, userID string, limit, offset int) ([]models.Order, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.orders.ListByUser(ctx, userID, limit, offset)
}
