package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/scentara/perfume-api/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

type AdminService struct {
	orders OrderRepository
	users  UserRepository
	log    *zap.Logger
	now    func() time.Time
}

func NewAdminService(orders OrderRepository, users UserRepository, log *zap.Logger) *AdminService {
	return &AdminService{orders: orders, users: users, log: log, now: time.Now}
}

func (s *AdminService) RecentOrders(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.ListRecent(ctx, limit, offset)
}

func (s *AdminService) OrdersByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.ListByStatus(ctx, status, limit, offset)
}

// MarkShipped moves an order to SUCCESSFUL and records the courier
// tracking id. Shipping is the admin-side settlement of an order.
func (s *AdminService) MarkShipped(ctx context.Context, orderID, shippingID string) (*models.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}

	fields := map[string]any{"status": models.OrderStatusSuccessful}
	if shippingID != "" {
		fields["shipping_id"] = shippingID
	}
	if err := s.orders.UpdateAdminFields(ctx, orderID, fields); err != nil {
		return nil, err
	}
	o.Status = models.OrderStatusSuccessful
	if shippingID != "" {
		o.ShippingID = shippingID
	}

	s.log.Info("order marked shipped",
		zap.String("order_id", orderID), zap.String("shipping_id", shippingID))
	return o, nil
}

// BulkShip marks many orders SUCCESSFUL at once and reports per-order
// failures instead of aborting the batch.
func (s *AdminService) BulkShip(ctx context.Context, shipments map[string]string) map[string]string {
	failures := make(map[string]string)
	for orderID, shippingID := range shipments {
		if _, err := s.MarkShipped(ctx, orderID, shippingID); err != nil {
			failures[orderID] = err.Error()
		}
	}
	return failures
}

// Cancel forces an order into FAILURE. Terminal orders are left alone.
func (s *AdminService) Cancel(ctx context.Context, orderID, reason string) error {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrNotFound
	}
	if o.IsTerminal() {
		return ErrOrderTerminal
	}

	fields := map[string]any{"status": models.OrderStatusFailure}
	if reason != "" {
		fields["admin_notes"] = reason
	}
	if err := s.orders.UpdateAdminFields(ctx, orderID, fields); err != nil {
		return err
	}

	s.log.Info("order cancelled", zap.String("order_id", orderID))
	return nil
}

// Annotate updates the moderation fields on an order.
func (s *AdminService) Annotate(ctx context.Context, orderID string, notes *string, spam *bool) error {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrNotFound
	}

	fields := make(map[string]any, 2)
	if notes != nil {
		fields["admin_notes"] = *notes
	}
	if spam != nil {
		fields["spam_order"] = *spam
	}
	if len(fields) == 0 {
		return nil
	}
	return s.orders.UpdateAdminFields(ctx, orderID, fields)
}

// OrderStats is the admin dashboard payload: order counts per status
// plus overall and same-day volume.
type OrderStats struct {
	TotalOrders  int64           `json:"total_orders"`
	Initiated    int64           `json:"initiated"`
	Pending      int64           `json:"pending"`
	Successful   int64           `json:"successful"`
	Failure      int64           `json:"failure"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TodayOrders  int64           `json:"today_orders"`
	TodayRevenue decimal.Decimal `json:"today_revenue"`
}

func (s *AdminService) Stats(ctx context.Context) (*OrderStats, error) {
	stats := &OrderStats{}
	for _, pair := range []struct {
		status models.OrderStatus
		dst    *int64
	}{
		{models.OrderStatusInitiated, &stats.Initiated},
		{models.OrderStatusPending, &stats.Pending},
		{models.OrderStatusSuccessful, &stats.Successful},
		{models.OrderStatusFailure, &stats.Failure},
	} {
		n, err := s.orders.CountByStatus(ctx, pair.status)
		if err != nil {
			return nil, err
		}
		*pair.dst = n
	}

	var err error
	if stats.TotalOrders, err = s.orders.CountSince(ctx, time.Time{}); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.orders.SumRevenueSince(ctx, time.Time{}); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if stats.TodayOrders, err = s.orders.CountSince(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.TodayRevenue, err = s.orders.SumRevenueSince(ctx, dayStart); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.users.List(ctx, limit, offset)
}

// ExportShippedAddresses renders the shipping addresses of paid orders as
// an xlsx workbook for the courier handoff.
func (s *AdminService) ExportShippedAddresses(ctx context.Context) ([]byte, error) {
	orders, _, err := s.orders.ListByStatus(ctx, models.OrderStatusSuccessful, 10000, 0)
	if err != nil {
		return nil, err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Shipped Orders")
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, col := range []string{
		"Order ID", "Shipping ID", "Total", "Currency",
		"Name", "Phone", "Street", "Landmark", "City", "State", "Pincode", "Country",
	} {
		header.AddCell().SetString(col)
	}

	for i := range orders {
		o := &orders[i]
		row := sheet.AddRow()
		row.AddCell().SetString(o.ID)
		row.AddCell().SetString(o.ShippingID)
		row.AddCell().SetString(o.TotalAmount.StringFixed(2))
		row.AddCell().SetString(o.Currency)

		if a := o.Address; a != nil {
			row.AddCell().SetString(a.FirstName + " " + a.LastName)
			row.AddCell().SetString(a.PhoneNumber)
			street := a.Street1
			if a.Street2 != "" {
				street += ", " + a.Street2
			}
			row.AddCell().SetString(street)
			row.AddCell().SetString(a.Landmark)
			row.AddCell().SetString(a.City)
			row.AddCell().SetString(a.State)
			row.AddCell().SetString(a.Pincode)
			row.AddCell().SetString(a.Country)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
