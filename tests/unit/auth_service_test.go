package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	authservice "bookstore/contexts/identity-access/auth-service"
	domainerrors "bookstore/contexts/identity-access/auth-service/domain/errors"
	"bookstore/contexts/identity-access/auth-service/ports"
	httptransport "bookstore/contexts/identity-access/auth-service/transport/http"
)

func newAuthModule() authservice.Module {
	return authservice.NewInMemoryModule("unit-test-secret", time.Hour, nil)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	module := newAuthModule()

	first, err := module.Handler.RegisterHandler(context.Background(), httptransport.RegisterRequest{
		Email:    "reader@example.com",
		Password: "plenty-secret",
	})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if first.Message == "" {
		t.Fatalf("expected confirmation message")
	}

	_, err = module.Handler.RegisterHandler(context.Background(), httptransport.RegisterRequest{
		Email:    "reader@example.com",
		Password: "another-secret",
	})
	if !errors.Is(err, domainerrors.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	module := newAuthModule()

	_, err := module.Service.Register(context.Background(), "", "secret", "")
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}

	_, err = module.Service.Register(context.Background(), "reader@example.com", "", "")
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing password, got %v", err)
	}
}

func TestLoginReturnsTokenWithMatchingClaims(t *testing.T) {
	module := newAuthModule()

	user, err := module.Service.Register(context.Background(), "admin@example.com", "plenty-secret", "admin")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := module.Handler.LoginHandler(context.Background(), httptransport.LoginRequest{
		Email:    "admin@example.com",
		Password: "plenty-secret",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := module.Service.Verify(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Fatalf("expected user id %s, got %s", user.UserID, claims.UserID)
	}
	if claims.Role != ports.RoleAdmin {
		t.Fatalf("expected admin role, got %s", claims.Role)
	}
}

func TestLoginWrongPasswordAndUnknownEmailSameError(t *testing.T) {
	module := newAuthModule()

	if _, err := module.Service.Register(context.Background(), "reader@example.com", "plenty-secret", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := module.Service.Login(context.Background(), "reader@example.com", "not-the-password")
	_, unknownEmail := module.Service.Login(context.Background(), "ghost@example.com", "plenty-secret")

	if !errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("expected identical errors, got %q and %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestRegisterDefaultsToCustomerRole(t *testing.T) {
	module := newAuthModule()

	user, err := module.Service.Register(context.Background(), "reader@example.com", "plenty-secret", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != ports.RoleCustomer {
		t.Fatalf("expected customer role, got %s", user.Role)
	}
}

func TestAuthorizeRejectsMissingRole(t *testing.T) {
	module := newAuthModule()

	claims := ports.Claims{UserID: "user-1", Role: ports.RoleCustomer}
	if err := module.Service.Authorize(claims, ports.RoleAdmin); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := module.Service.Authorize(claims, ports.RoleCustomer, ports.RoleAdmin); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestVerifyRejectsMissingAndGarbageTokens(t *testing.T) {
	module := newAuthModule()

	if _, err := module.Service.Verify(context.Background(), ""); !errors.Is(err, domainerrors.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := module.Service.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
