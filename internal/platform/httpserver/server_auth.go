package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	autherrors "bookstore/contexts/identity-access/auth-service/domain/errors"
	authhttp "bookstore/contexts/identity-access/auth-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authhttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.auth.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "request body must be valid JSON", "")
		return
	}

	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidInput):
		writeAuthError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, autherrors.ErrDuplicateUser):
		writeAuthError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, autherrors.ErrInvalidCredentials):
		writeAuthError(w, http.StatusBadRequest, err.Error(), "")
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal server error", err.Error())
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string, details string) {
	writeJSON(w, status, authhttp.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
