package bootstrap

import (
	"context"

	catalogapp "bookstore/contexts/catalog/catalog-service/application"
	orderports "bookstore/contexts/ordering/order-service/ports"
)

// CatalogInventory adapts the catalog's stock operations to the ordering
// context's Inventory port. The bridge lives here so neither context
// imports the other.
type CatalogInventory struct {
	Catalog catalogapp.Service
}

func (a CatalogInventory) Reserve(ctx context.Context, bookID string, quantity int) (orderports.StockLine, bool, error) {
	book, ok, err := a.Catalog.ReserveStock(ctx, bookID, quantity)
	if err != nil {
		return orderports.StockLine{}, false, err
	}
	line := orderports.StockLine{
		BookID:         book.BookID,
		Title:          book.Title,
		UnitPriceCents: book.PriceCents,
		Remaining:      book.Quantity,
	}
	return line, ok, nil
}

func (a CatalogInventory) Release(ctx context.Context, bookID string, quantity int) error {
	return a.Catalog.ReleaseStock(ctx, bookID, quantity)
}

var _ orderports.Inventory = CatalogInventory{}
