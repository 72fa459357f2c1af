package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogservice "bookstore/contexts/catalog/catalog-service"
	catalogapp "bookstore/contexts/catalog/catalog-service/application"
	authservice "bookstore/contexts/identity-access/auth-service"
	orderservice "bookstore/contexts/ordering/order-service"
	orderports "bookstore/contexts/ordering/order-service/ports"
)

// testInventory mirrors the runtime bridge in internal/app/bootstrap so the
// test server places orders against the same catalog it serves.
type testInventory struct {
	catalog catalogapp.Service
}

func (a testInventory) Reserve(ctx context.Context, bookID string, quantity int) (orderports.StockLine, bool, error) {
	book, ok, err := a.catalog.ReserveStock(ctx, bookID, quantity)
	if err != nil {
		return orderports.StockLine{}, false, err
	}
	return orderports.StockLine{
		BookID:         book.BookID,
		Title:          book.Title,
		UnitPriceCents: book.PriceCents,
		Remaining:      book.Quantity,
	}, ok, nil
}

func (a testInventory) Release(ctx context.Context, bookID string, quantity int) error {
	return a.catalog.ReleaseStock(ctx, bookID, quantity)
}

func newTestServer() *Server {
	catalog := catalogservice.NewInMemoryModule(slog.Default())
	return New(
		authservice.NewInMemoryModule("test-secret", time.Hour, slog.Default()),
		catalog,
		orderservice.NewInMemoryModule(testInventory{catalog: catalog.Service}, slog.Default()),
		slog.Default(),
		":0",
	)
}

func doJSON(server *Server, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func registerAndLogin(t *testing.T, server *Server, email, password, role string) string {
	t.Helper()

	rr := doJSON(server, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d body=%s", email, rr.Code, rr.Body.String())
	}

	rr = doJSON(server, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s failed: %d body=%s", email, rr.Code, rr.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in login response, body=%s", rr.Body.String())
	}
	return resp.Token
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server := newTestServer()

	rr := doJSON(server, http.MethodGet, "/books", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] != "Access denied" {
		t.Fatalf("expected access denied body, got %s", rr.Body.String())
	}
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	server := newTestServer()

	rr := doJSON(server, http.MethodGet, "/books", "not-a-jwt", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["error"] != "Invalid token" {
		t.Fatalf("expected invalid token body, got %s", rr.Body.String())
	}
}

func TestCustomerCannotCreateBooks(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "reader@example.com", "plenty-secret", "")

	rr := doJSON(server, http.MethodPost, "/books", token, map[string]any{
		"title":    "Nettle and Bone",
		"isbn":     "978-1-25-024440-3",
		"price":    18.99,
		"quantity": 5,
		"author":   "author-1",
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Success || resp.Message != "Access denied. Insufficient permissions." {
		t.Fatalf("expected forbidden body, got %s", rr.Body.String())
	}
}

func TestAdminCannotPlaceOrders(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "admin@example.com", "plenty-secret", "admin")

	rr := doJSON(server, http.MethodPost, "/orders", token, map[string]any{
		"items": []map[string]any{{"book": "book-1", "quantity": 1}},
	})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCustomerCannotListOrders(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "reader@example.com", "plenty-secret", "")

	rr := doJSON(server, http.MethodGet, "/orders", token, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUnmatchedRouteIsPlainTextNotFound(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr.Body.String() != "Page not found. Please check the URL." {
		t.Fatalf("expected plain text not-found body, got %q", rr.Body.String())
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	server := newTestServer()
	registerAndLogin(t, server, "reader@example.com", "plenty-secret", "")

	rr := doJSON(server, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "reader@example.com",
		"password": "plenty-secret",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetMissingBookIs404(t *testing.T) {
	server := newTestServer()
	token := registerAndLogin(t, server, "reader@example.com", "plenty-secret", "")

	rr := doJSON(server, http.MethodGet, fmt.Sprintf("/books/%s", "missing-id"), token, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
