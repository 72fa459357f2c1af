package httpserver

import (
	"errors"
	"net/http"
	"strings"

	autherrors "bookstore/contexts/identity-access/auth-service/domain/errors"
	authports "bookstore/contexts/identity-access/auth-service/ports"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, claims authports.Claims)

type forbiddenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// withRoles verifies the bearer token and checks the caller's role before
// dispatching. The three failure shapes are part of the public contract:
// 401 for an absent token, 400 for a token that does not verify, 403 for a
// verified caller whose role is not allowed.
func (s *Server) withRoles(next authedHandler, roles ...authports.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.TrimSpace(header) == "" {
			writeJSON(w, http.StatusUnauthorized, authErrorResponse{Error: "Access denied"})
			return
		}

		token := header
		if _, rest, found := strings.Cut(header, " "); found {
			token = rest
		}

		claims, err := s.auth.Service.Verify(r.Context(), token)
		if err != nil {
			if errors.Is(err, autherrors.ErrMissingToken) {
				writeJSON(w, http.StatusUnauthorized, authErrorResponse{Error: "Access denied"})
				return
			}
			writeJSON(w, http.StatusBadRequest, authErrorResponse{Error: "Invalid token"})
			return
		}

		if err := s.auth.Service.Authorize(claims, roles...); err != nil {
			writeJSON(w, http.StatusForbidden, forbiddenResponse{
				Success: false,
				Message: "Access denied. Insufficient permissions.",
			})
			return
		}

		next(w, r, claims)
	}
}
