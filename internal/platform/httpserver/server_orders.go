package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authports "bookstore/contexts/identity-access/auth-service/ports"
	ordererrors "bookstore/contexts/ordering/order-service/domain/errors"
	orderhttp "bookstore/contexts/ordering/order-service/transport/http"
)

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request, claims authports.Claims) {
	var req orderhttp.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.ordering.Handler.PlaceOrderHandler(r.Context(), claims.UserID, req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request, _ authports.Claims) {
	resp, err := s.ordering.Handler.ListOrdersHandler(r.Context())
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrInvalidOrder),
		errors.Is(err, ordererrors.ErrInsufficientStock):
		writeOrderError(w, http.StatusBadRequest, err.Error(), "")
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal server error", err.Error())
	}
}

func writeOrderError(w http.ResponseWriter, status int, message string, details string) {
	writeJSON(w, status, orderhttp.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
