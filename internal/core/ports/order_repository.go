package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
)

// OrderRepository defines the persistence contract for orders.
// Orders are stored as snapshots of current state, cart included; the
// authoritative change history lives in the fact log (see FactRepository).
type OrderRepository interface {
	// Add persists a new order snapshot.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, order *orderbook.Order) error

	// Update persists changes to an existing order snapshot.
	Update(ctx context.Context, order *orderbook.Order) error

	// Remove deletes the order snapshot with the given id.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError if no order with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*orderbook.Order, error)

	// GetAll retrieves every order in the book.
	// Used to restore the OrderBook aggregate before handling a command.
	GetAll(ctx context.Context) ([]*orderbook.Order, error)
}
