package httpadapter

import (
	"context"
	"log/slog"

	"bookstore/contexts/identity-access/auth-service/application"
	httptransport "bookstore/contexts/identity-access/auth-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a user
// @Description Creates a credential record with a hashed password. Default role is customer.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterRequest true "Registration payload"
// @Success 201 {object} httptransport.RegisterResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /auth/register [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	if _, err := h.Service.Register(ctx, req.Email, req.Password, req.Role); err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{Message: "User registered successfully"}, nil
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies credentials and returns a signed bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Login payload"
// @Success 200 {object} httptransport.LoginResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /auth/login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	token, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{Message: "Login successful", Token: token}, nil
}
