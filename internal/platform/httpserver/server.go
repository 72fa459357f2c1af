package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	catalogservice "bookstore/contexts/catalog/catalog-service"
	authservice "bookstore/contexts/identity-access/auth-service"
	authports "bookstore/contexts/identity-access/auth-service/ports"
	orderservice "bookstore/contexts/ordering/order-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "bookstore/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	auth     authservice.Module
	catalog  catalogservice.Module
	ordering orderservice.Module
}

func New(
	auth authservice.Module,
	catalog catalogservice.Module,
	ordering orderservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		auth:     auth,
		catalog:  catalog,
		ordering: ordering,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /auth/login", s.handleLogin)

	anyRole := []authports.Role{authports.RoleCustomer, authports.RoleAdmin}
	adminOnly := []authports.Role{authports.RoleAdmin}
	customerOnly := []authports.Role{authports.RoleCustomer}

	s.mux.HandleFunc("GET /books", s.withRoles(s.handleListBooks, anyRole...))
	s.mux.HandleFunc("GET /books/{id}", s.withRoles(s.handleGetBook, anyRole...))
	s.mux.HandleFunc("POST /books", s.withRoles(s.handleCreateBook, adminOnly...))
	s.mux.HandleFunc("PUT /books/{id}", s.withRoles(s.handleUpdateBook, adminOnly...))
	s.mux.HandleFunc("DELETE /books/{id}", s.withRoles(s.handleDeleteBook, adminOnly...))

	s.mux.HandleFunc("GET /authors", s.withRoles(s.handleListAuthors, anyRole...))
	s.mux.HandleFunc("GET /authors/{id}", s.withRoles(s.handleGetAuthor, anyRole...))
	s.mux.HandleFunc("POST /authors", s.withRoles(s.handleCreateAuthor, adminOnly...))
	s.mux.HandleFunc("PUT /authors/{id}", s.withRoles(s.handleUpdateAuthor, adminOnly...))
	s.mux.HandleFunc("DELETE /authors/{id}", s.withRoles(s.handleDeleteAuthor, adminOnly...))

	s.mux.HandleFunc("POST /orders", s.withRoles(s.handlePlaceOrder, customerOnly...))
	s.mux.HandleFunc("GET /orders", s.withRoles(s.handleListOrders, adminOnly...))

	s.mux.HandleFunc("/", s.handleFallback)
}

// handleFallback serves the home page and turns everything else into the
// plain-text not-found response.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" && r.Method == http.MethodGet {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Welcome to the Bookstore API"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Page not found. Please check the URL."))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
