package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OrderLine is a snapshot taken at order time. UnitPriceCents and Title are
// copied from the book record and never re-read afterwards.
type OrderLine struct {
	BookID         string
	Title          string
	Quantity       int
	UnitPriceCents int64
}

// Order is immutable once created. There is no update or cancel operation.
type Order struct {
	OrderID         string
	CustomerID      string
	Lines           []OrderLine
	TotalCents      int64
	ShippingAddress string
	CreatedAt       time.Time
}

// OrderItemRequest is one requested line before stock has been checked.
type OrderItemRequest struct {
	BookID   string
	Quantity int
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order Order) error
	ListOrders(ctx context.Context) ([]Order, error)
}

// StockLine describes the book a reservation ran against.
type StockLine struct {
	BookID         string
	Title          string
	UnitPriceCents int64
	Remaining      int
}

// Inventory is the stock side of order placement. Reserve applies a
// conditional decrement: ok is false when the book is missing or has fewer
// units than requested, and in the found-but-short case the returned
// StockLine still carries the title. Release undoes an earlier Reserve.
type Inventory interface {
	Reserve(ctx context.Context, bookID string, quantity int) (StockLine, bool, error)
	Release(ctx context.Context, bookID string, quantity int) error
}
