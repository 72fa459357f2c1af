package http

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type OrderLineDTO struct {
	BookID    string  `json:"book_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderDTO struct {
	ID              string         `json:"id"`
	Customer        string         `json:"customer"`
	Items           []OrderLineDTO `json:"items"`
	TotalCost       float64        `json:"totalCost"`
	ShippingAddress string         `json:"shippingAddress"`
}

type OrderItemRequestDTO struct {
	BookID   string `json:"book"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequestDTO `json:"items"`
	ShippingAddress string                `json:"shippingAddress"`
}
