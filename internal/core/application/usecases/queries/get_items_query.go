// Package queries contains read operations of the CQRS split.
// Query handlers bypass the domain model and read snapshot tables directly
// with raw SQL for optimal read performance.
package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves the whole item catalog.
//
// Example:
//
//	query := NewGetItemsQuery()
//	handler := NewGetItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get items: %w", err)
//	}
//	fmt.Printf("Catalog holds %d items\n", len(items))
type GetItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query to retrieve the catalog.
// This is a parameterless query that fetches every item.
func NewGetItemsQuery() GetItemsQuery {
	return GetItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// GetItemsQueryResponse represents one catalog item in the read model.
type GetItemsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Price       decimal.Decimal
	Description *string
	Stock       int
}
