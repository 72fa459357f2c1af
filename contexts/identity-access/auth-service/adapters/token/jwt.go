package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/contexts/identity-access/auth-service/ports"
)

// JWTCodec issues and verifies HS256 bearer tokens. Claims carry user id and
// role so authorization needs no datastore round-trip.
type JWTCodec struct {
	Secret []byte
	TTL    time.Duration
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c JWTCodec) Issue(claims ports.Claims, now time.Time) (string, error) {
	if len(c.Secret) == 0 {
		return "", errors.New("jwt secret is required")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: claims.UserID,
		Role:   string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.UTC()),
			ExpiresAt: jwt.NewNumericDate(now.UTC().Add(c.ttl())),
		},
	})
	return token.SignedString(c.Secret)
}

func (c JWTCodec) Verify(raw string, now time.Time) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		raw,
		&tokenClaims{},
		func(*jwt.Token) (any, error) { return c.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now.UTC() }),
	)
	if err != nil {
		return ports.Claims{}, err
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, errors.New("invalid token claims")
	}
	role, ok := ports.ParseRole(claims.Role)
	if !ok || claims.Role == "" || claims.UserID == "" {
		return ports.Claims{}, errors.New("invalid token claims")
	}
	return ports.Claims{UserID: claims.UserID, Role: role}, nil
}

func (c JWTCodec) ttl() time.Duration {
	if c.TTL <= 0 {
		return 24 * time.Hour
	}
	return c.TTL
}

var _ ports.TokenCodec = JWTCodec{}
