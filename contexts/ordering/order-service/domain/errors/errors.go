package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrder      = errors.New("order must include at least one item")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError names the offending book so callers can surface
// which line made the whole order fail. It matches ErrInsufficientStock
// under errors.Is.
type InsufficientStockError struct {
	// Ref is the book title when the book was found, the raw id otherwise.
	Ref string
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q", e.Ref)
}

func (e InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
