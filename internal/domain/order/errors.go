package order

import "errors"

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrInvalidOrderID = errors.New("order id must be greater than zero")

	// ErrIDConflict signals that the id picked for a new order is no
	// longer the next sequential id. The submission can be retried
	// with a freshly computed id.
	ErrIDConflict = errors.New("order id is already taken")
)
