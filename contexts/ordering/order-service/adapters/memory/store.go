package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bookstore/contexts/ordering/order-service/ports"

	"github.com/google/uuid"
)

type stockItem struct {
	Title      string
	PriceCents int64
	Quantity   int
}

// Store keeps orders plus a small self-contained stock table so the module
// can run standalone in tests. Production wiring replaces the Inventory
// port with an adapter over the catalog.
type Store struct {
	mu     sync.RWMutex
	orders map[string]ports.Order
	stock  map[string]stockItem
}

func NewStore() *Store {
	return &Store{
		orders: make(map[string]ports.Order),
		stock:  make(map[string]stockItem),
	}
}

// SeedStock registers a purchasable book in the standalone stock table.
func (s *Store) SeedStock(bookID, title string, priceCents int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[bookID] = stockItem{Title: title, PriceCents: priceCents, Quantity: quantity}
}

// StockQuantity reports the remaining units for a seeded book.
func (s *Store) StockQuantity(bookID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock[bookID].Quantity
}

func (s *Store) CreateOrder(ctx context.Context, order ports.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.OrderID] = cloneOrder(order)
	return nil
}

func (s *Store) ListOrders(ctx context.Context) ([]ports.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]ports.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, cloneOrder(order))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Store) Reserve(ctx context.Context, bookID string, quantity int) (ports.StockLine, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.stock[bookID]
	if !found {
		return ports.StockLine{}, false, nil
	}
	line := ports.StockLine{
		BookID:         bookID,
		Title:          item.Title,
		UnitPriceCents: item.PriceCents,
		Remaining:      item.Quantity,
	}
	if item.Quantity < quantity {
		return line, false, nil
	}
	item.Quantity -= quantity
	s.stock[bookID] = item
	line.Remaining = item.Quantity
	return line, true, nil
}

func (s *Store) Release(ctx context.Context, bookID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, found := s.stock[bookID]
	if !found {
		return nil
	}
	item.Quantity += quantity
	s.stock[bookID] = item
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func cloneOrder(order ports.Order) ports.Order {
	out := order
	out.Lines = append([]ports.OrderLine(nil), order.Lines...)
	return out
}

var _ ports.OrderRepository = (*Store)(nil)
var _ ports.Inventory = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
