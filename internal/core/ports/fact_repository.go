package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
)

// FactRepository defines the persistence contract for the fact log.
// Facts are appended in the order they were applied and never mutated;
// replaying the stored sequence for an aggregate reconstructs its state.
type FactRepository interface {
	// Append adds facts to the end of the log.
	// Facts are written inside the surrounding transaction, so a rolled
	// back command leaves no trace in the log.
	Append(ctx context.Context, facts ...kernel.Fact) error

	// GetForAggregate retrieves every stored fact for the given aggregate id,
	// oldest first.
	GetForAggregate(ctx context.Context, aggregateID kernel.UUID) ([]kernel.Fact, error)
}
