package repository

import (
	"context"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
)

// OrderStore is the durable, ordered collection of submitted orders.
//
// Load never fails the caller: an absent or unreadable backing resource
// yields an empty sequence, with the discrepancy surfaced to the log by
// the implementation. Append validates that the new order's id is
// exactly one greater than the current maximum and persists atomically,
// returning order.ErrIDConflict when another writer got there first.
type OrderStore interface {
	Load(ctx context.Context) []order.Order
	Append(ctx context.Context, o *order.Order) error
}
