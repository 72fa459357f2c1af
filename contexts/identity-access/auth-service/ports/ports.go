package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw role value to a known Role. Empty input falls back to
// customer; anything else is rejected.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case "":
		return RoleCustomer, true
	case RoleCustomer:
		return RoleCustomer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

type User struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Claims is the decoded content of a bearer token. It is never persisted;
// the token codec is the only issuer and verifier.
type Claims struct {
	UserID string
	Role   Role
}

type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

type TokenCodec interface {
	Issue(claims Claims, now time.Time) (string, error)
	Verify(token string, now time.Time) (Claims, error)
}
