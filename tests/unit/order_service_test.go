package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	orderservice "bookstore/contexts/ordering/order-service"
	domainerrors "bookstore/contexts/ordering/order-service/domain/errors"
	"bookstore/contexts/ordering/order-service/ports"
)

func newOrderModule() orderservice.Module {
	return orderservice.NewInMemoryModule(nil, nil)
}

func TestPlaceOrderDecrementsStockAndComputesTotal(t *testing.T) {
	module := newOrderModule()
	module.Store.SeedStock("book-1", "Nettle and Bone", 999, 5)

	order, err := module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 3},
	}, "12 Hollow Lane")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if order.TotalCents != 3*999 {
		t.Fatalf("expected total %d, got %d", 3*999, order.TotalCents)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(order.Lines))
	}
	if order.Lines[0].Title != "Nettle and Bone" || order.Lines[0].UnitPriceCents != 999 {
		t.Fatalf("expected snapshotted title and price, got %+v", order.Lines[0])
	}
	if remaining := module.Store.StockQuantity("book-1"); remaining != 2 {
		t.Fatalf("expected remaining stock 2, got %d", remaining)
	}
}

func TestPlaceOrderInsufficientStockLeavesStockUnchanged(t *testing.T) {
	module := newOrderModule()
	module.Store.SeedStock("book-1", "Nettle and Bone", 999, 5)

	_, err := module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 6},
	}, "")
	if !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !strings.Contains(err.Error(), "Nettle and Bone") {
		t.Fatalf("expected error to name the book title, got %q", err.Error())
	}
	if remaining := module.Store.StockQuantity("book-1"); remaining != 5 {
		t.Fatalf("expected stock untouched at 5, got %d", remaining)
	}

	orders, err := module.Service.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no persisted orders, got %d", len(orders))
	}
}

func TestPlaceOrderUnknownBookNamesID(t *testing.T) {
	module := newOrderModule()

	_, err := module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "ghost-book", Quantity: 1},
	}, "")
	if !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if !strings.Contains(err.Error(), "ghost-book") {
		t.Fatalf("expected error to name the book id, got %q", err.Error())
	}
}

func TestPlaceOrderFailureReleasesEarlierLines(t *testing.T) {
	module := newOrderModule()
	module.Store.SeedStock("book-1", "Nettle and Bone", 999, 5)
	module.Store.SeedStock("book-2", "Thornhedge", 1499, 1)

	_, err := module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 2},
		{BookID: "book-2", Quantity: 4},
	}, "")
	if !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	if remaining := module.Store.StockQuantity("book-1"); remaining != 5 {
		t.Fatalf("expected first line released back to 5, got %d", remaining)
	}
	if remaining := module.Store.StockQuantity("book-2"); remaining != 1 {
		t.Fatalf("expected second line untouched at 1, got %d", remaining)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	module := newOrderModule()
	module.Store.SeedStock("book-1", "Nettle and Bone", 999, 5)

	_, err := module.Service.PlaceOrder(context.Background(), "", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 1},
	}, "")
	if !errors.Is(err, domainerrors.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for empty customer, got %v", err)
	}

	_, err = module.Service.PlaceOrder(context.Background(), "customer-1", nil, "")
	if !errors.Is(err, domainerrors.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for empty items, got %v", err)
	}

	_, err = module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 0},
	}, "")
	if !errors.Is(err, domainerrors.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for zero quantity, got %v", err)
	}
}

func TestListOrdersReturnsPlacedOrders(t *testing.T) {
	module := newOrderModule()
	module.Store.SeedStock("book-1", "Nettle and Bone", 999, 5)

	placed, err := module.Service.PlaceOrder(context.Background(), "customer-1", []ports.OrderItemRequest{
		{BookID: "book-1", Quantity: 1},
	}, "12 Hollow Lane")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	orders, err := module.Service.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}
	if orders[0].OrderID != placed.OrderID {
		t.Fatalf("expected order id %s, got %s", placed.OrderID, orders[0].OrderID)
	}
	if orders[0].ShippingAddress != "12 Hollow Lane" {
		t.Fatalf("expected shipping address preserved, got %q", orders[0].ShippingAddress)
	}
}
