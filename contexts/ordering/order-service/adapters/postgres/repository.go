package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"bookstore/contexts/ordering/order-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, order ports.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := orderModel{
			OrderID:         order.OrderID,
			CustomerID:      order.CustomerID,
			TotalCents:      order.TotalCents,
			ShippingAddress: order.ShippingAddress,
			CreatedAt:       order.CreatedAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for i, line := range order.Lines {
			lineRow := orderLineModel{
				OrderID:        order.OrderID,
				Position:       i,
				BookID:         line.BookID,
				Title:          line.Title,
				Quantity:       line.Quantity,
				UnitPriceCents: line.UnitPriceCents,
			}
			if err := tx.Create(&lineRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ListOrders(ctx context.Context) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	orders := make([]ports.Order, 0, len(rows))
	for _, row := range rows {
		var lineRows []orderLineModel
		if err := r.db.WithContext(ctx).
			Where("order_id = ?", row.OrderID).
			Order("position ASC").
			Find(&lineRows).
			Error; err != nil {
			return nil, err
		}

		order := ports.Order{
			OrderID:         row.OrderID,
			CustomerID:      row.CustomerID,
			Lines:           make([]ports.OrderLine, 0, len(lineRows)),
			TotalCents:      row.TotalCents,
			ShippingAddress: row.ShippingAddress,
			CreatedAt:       row.CreatedAt.UTC(),
		}
		for _, lineRow := range lineRows {
			order.Lines = append(order.Lines, ports.OrderLine{
				BookID:         lineRow.BookID,
				Title:          lineRow.Title,
				Quantity:       lineRow.Quantity,
				UnitPriceCents: lineRow.UnitPriceCents,
			})
		}
		orders = append(orders, order)
	}
	return orders, nil
}

type orderModel struct {
	OrderID         string    `gorm:"column:order_id;primaryKey"`
	CustomerID      string    `gorm:"column:customer_id"`
	TotalCents      int64     `gorm:"column:total_cents"`
	ShippingAddress string    `gorm:"column:shipping_address"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (orderModel) TableName() string {
	return "orders"
}

type orderLineModel struct {
	OrderID        string `gorm:"column:order_id;primaryKey"`
	Position       int    `gorm:"column:position;primaryKey"`
	BookID         string `gorm:"column:book_id"`
	Title          string `gorm:"column:title"`
	Quantity       int    `gorm:"column:quantity"`
	UnitPriceCents int64  `gorm:"column:unit_price_cents"`
}

func (orderLineModel) TableName() string {
	return "order_lines"
}

var _ ports.OrderRepository = (*Repository)(nil)
