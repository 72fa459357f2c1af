package errors

import "errors"

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidBook        = errors.New("invalid book fields")
	ErrAuthorNameRequired = errors.New("author name is required")
	ErrBookNotFound       = errors.New("book not found")
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDuplicateISBN      = errors.New("isbn already exists")
)
