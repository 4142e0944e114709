package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrder: the request selected nothing; the form is re-shown.
	ErrEmptyOrder = errors.New("select at least one item")

	// ErrOrderNotFound: unknown order id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrAlreadyPaid: duplicate payment attempt.
	ErrAlreadyPaid = errors.New("already paid")

	// ErrInvalidCredentials: username/password/role mismatch on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// StockInsufficientError aborts an entire order: the named item cannot
// cover the requested quantity.
type StockInsufficientError struct {
	Item      string
	Available int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("Not enough stock for %s. Available %d", e.Item, e.Available)
}

func IsStockInsufficient(err error) bool {
	var se *StockInsufficientError
	return errors.As(err, &se)
}
