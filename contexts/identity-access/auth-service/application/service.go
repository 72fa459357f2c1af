package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "bookstore/contexts/identity-access/auth-service/domain/errors"
	"bookstore/contexts/identity-access/auth-service/ports"
)

type Service struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenCodec
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Register creates a credential record with a salted one-way hash.
// The plaintext password is never stored.
func (s Service) Register(ctx context.Context, email string, password string, role string) (ports.User, error) {
	logger := resolveLogger(s.Logger)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return ports.User{}, domainerrors.ErrInvalidInput
	}
	parsedRole, ok := ports.ParseRole(strings.TrimSpace(role))
	if !ok {
		return ports.User{}, domainerrors.ErrInvalidInput
	}

	if _, found, err := s.Users.GetUserByEmail(ctx, email); err != nil {
		return ports.User{}, err
	} else if found {
		return ports.User{}, domainerrors.ErrDuplicateUser
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return ports.User{}, err
	}
	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.User{}, err
	}

	user := ports.User{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
		CreatedAt:    s.now(),
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return ports.User{}, err
	}

	logger.Info("user registered",
		"event", "auth_user_registered",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}

// Login verifies credentials and issues a signed bearer token. Unknown email
// and wrong password return the same error so accounts cannot be enumerated.
func (s Service) Login(ctx context.Context, email string, password string) (string, error) {
	logger := resolveLogger(s.Logger)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domainerrors.ErrInvalidInput
	}

	user, found, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !found || !s.Hasher.Compare(user.PasswordHash, password) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(ports.Claims{UserID: user.UserID, Role: user.Role}, s.now())
	if err != nil {
		return "", err
	}

	logger.Info("user logged in",
		"event", "auth_user_logged_in",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return token, nil
}

// Verify decodes and validates a bearer token without a datastore round-trip.
func (s Service) Verify(ctx context.Context, token string) (ports.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return ports.Claims{}, domainerrors.ErrMissingToken
	}
	claims, err := s.Tokens.Verify(token, s.now())
	if err != nil {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}
	return claims, nil
}

// Authorize is the stateless access policy: the caller's role must be one of
// the required roles. An empty requirement list denies everything.
func (s Service) Authorize(claims ports.Claims, requiredRoles ...ports.Role) error {
	for _, role := range requiredRoles {
		if claims.Role == role {
			return nil
		}
	}
	return domainerrors.ErrForbidden
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
