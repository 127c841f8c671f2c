// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
// Items are stored as snapshots of current state; the authoritative change
// history lives in the fact log (see FactRepository).
type ItemRepository interface {
	// Add persists a new item snapshot.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists changes to an existing item snapshot.
	Update(ctx context.Context, item *catalog.Item) error

	// Remove deletes the item snapshot with the given id.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves an item by its unique identifier.
	// Returns an ObjectNotFoundError if no item with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetAll retrieves every item in the catalog.
	// Used to restore the Catalog aggregate before handling a command.
	GetAll(ctx context.Context) ([]*catalog.Item, error)
}
