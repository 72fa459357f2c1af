package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "bookstore/contexts/ordering/order-service/domain/errors"
	"bookstore/contexts/ordering/order-service/ports"
)

type Service struct {
	Orders    ports.OrderRepository
	Inventory ports.Inventory
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

// PlaceOrder reserves stock line by line and persists the order only when
// every line succeeded. Any failure releases the reservations already taken
// in this request, so the order applies all-or-nothing.
func (s Service) PlaceOrder(ctx context.Context, customerID string, items []ports.OrderItemRequest, shippingAddress string) (ports.Order, error) {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(customerID) == "" || len(items) == 0 {
		return ports.Order{}, domainerrors.ErrInvalidOrder
	}
	for _, item := range items {
		if strings.TrimSpace(item.BookID) == "" || item.Quantity <= 0 {
			return ports.Order{}, domainerrors.ErrInvalidOrder
		}
	}

	lines := make([]ports.OrderLine, 0, len(items))
	var total int64
	for _, item := range items {
		stock, ok, err := s.Inventory.Reserve(ctx, item.BookID, item.Quantity)
		if err != nil {
			s.releaseAll(ctx, lines)
			return ports.Order{}, err
		}
		if !ok {
			s.releaseAll(ctx, lines)
			ref := stock.Title
			if ref == "" {
				ref = item.BookID
			}
			return ports.Order{}, domainerrors.InsufficientStockError{Ref: ref}
		}
		lines = append(lines, ports.OrderLine{
			BookID:         item.BookID,
			Title:          stock.Title,
			Quantity:       item.Quantity,
			UnitPriceCents: stock.UnitPriceCents,
		})
		total += int64(item.Quantity) * stock.UnitPriceCents
	}

	orderID, err := s.IDGen.NewID(ctx)
	if err != nil {
		s.releaseAll(ctx, lines)
		return ports.Order{}, err
	}
	order := ports.Order{
		OrderID:         orderID,
		CustomerID:      customerID,
		Lines:           lines,
		TotalCents:      total,
		ShippingAddress: strings.TrimSpace(shippingAddress),
		CreatedAt:       s.now(),
	}
	if err := s.Orders.CreateOrder(ctx, order); err != nil {
		s.releaseAll(ctx, lines)
		return ports.Order{}, err
	}

	logger.Info("order placed",
		"event", "ordering_order_placed",
		"module", "ordering/order-service",
		"layer", "application",
		"order_id", order.OrderID,
		"customer_id", order.CustomerID,
		"lines", len(order.Lines),
		"total_cents", order.TotalCents,
	)
	return order, nil
}

func (s Service) ListOrders(ctx context.Context) ([]ports.Order, error) {
	return s.Orders.ListOrders(ctx)
}

// releaseAll compensates reservations taken earlier in the same request.
// Release failures are logged and swallowed: the request is already failing
// and the caller gets the original error.
func (s Service) releaseAll(ctx context.Context, lines []ports.OrderLine) {
	logger := resolveLogger(s.Logger)
	for _, line := range lines {
		if err := s.Inventory.Release(ctx, line.BookID, line.Quantity); err != nil {
			logger.Error("stock release failed",
				"event", "ordering_stock_release_failed",
				"module", "ordering/order-service",
				"layer", "application",
				"book_id", line.BookID,
				"quantity", line.Quantity,
				"error", err,
			)
		}
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
