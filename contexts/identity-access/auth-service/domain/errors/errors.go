package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("email and password are required")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("access denied")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access denied, insufficient permissions")
)
