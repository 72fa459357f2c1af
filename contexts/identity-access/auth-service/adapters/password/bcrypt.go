package password

import (
	"golang.org/x/crypto/bcrypt"

	"bookstore/contexts/identity-access/auth-service/ports"
)

// BcryptHasher implements ports.PasswordHasher with per-hash random salts.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h BcryptHasher) Compare(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ ports.PasswordHasher = BcryptHasher{}
