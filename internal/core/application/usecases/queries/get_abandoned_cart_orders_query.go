package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetAbandonedCartOrdersQueryIsNotConstructed = errors.New(
	"GetAbandonedCartOrdersQuery must be created via NewGetAbandonedCartOrdersQuery constructor",
)

// GetAbandonedCartOrdersQuery retrieves orders whose cart has been collecting
// without changes since before the cutoff. The background reminder job feeds
// these into the abandoned cart notification command.
type GetAbandonedCartOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetAbandonedCartOrdersQuery creates a query for carts untouched since
// before cutoff.
func NewGetAbandonedCartOrdersQuery(cutoff time.Time) (GetAbandonedCartOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetAbandonedCartOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetAbandonedCartOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAbandonedCartOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAbandonedCartOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness threshold.
func (q GetAbandonedCartOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetAbandonedCartOrdersQueryResponse represents one stale collecting order.
type GetAbandonedCartOrdersQueryResponse struct {
	ID     kernel.UUID
	UserID kernel.UUID
}
