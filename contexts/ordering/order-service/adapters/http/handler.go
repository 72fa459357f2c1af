package httpadapter

import (
	"context"
	"log/slog"

	"bookstore/contexts/ordering/order-service/application"
	"bookstore/contexts/ordering/order-service/ports"
	httptransport "bookstore/contexts/ordering/order-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// PlaceOrderHandler godoc
// @Summary Place an order
// @Description Reserves stock for every item, snapshots prices, and persists the order. Fails as a whole if any item cannot be fulfilled.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateOrderRequest true "Order payload"
// @Success 201 {object} httptransport.OrderDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /orders [post]
func (h Handler) PlaceOrderHandler(ctx context.Context, customerID string, req httptransport.CreateOrderRequest) (httptransport.OrderDTO, error) {
	items := make([]ports.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItemRequest{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		})
	}
	order, err := h.Service.PlaceOrder(ctx, customerID, items, req.ShippingAddress)
	if err != nil {
		return httptransport.OrderDTO{}, err
	}
	return toOrderDTO(order), nil
}

// ListOrdersHandler godoc
// @Summary List orders
// @Description Returns every order with its snapshotted line items.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.OrderDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /orders [get]
func (h Handler) ListOrdersHandler(ctx context.Context) ([]httptransport.OrderDTO, error) {
	orders, err := h.Service.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.OrderDTO, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderDTO(order))
	}
	return items, nil
}

func toOrderDTO(order ports.Order) httptransport.OrderDTO {
	dto := httptransport.OrderDTO{
		ID:              order.OrderID,
		Customer:        order.CustomerID,
		Items:           make([]httptransport.OrderLineDTO, 0, len(order.Lines)),
		TotalCost:       float64(order.TotalCents) / 100,
		ShippingAddress: order.ShippingAddress,
	}
	for _, line := range order.Lines {
		dto.Items = append(dto.Items, httptransport.OrderLineDTO{
			BookID:    line.BookID,
			Title:     line.Title,
			Quantity:  line.Quantity,
			UnitPrice: float64(line.UnitPriceCents) / 100,
		})
	}
	return dto
}
