package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand represents a request to add a new item to the catalog.
// Name, price and stock invariants are enforced by the Catalog aggregate, so
// a well-formed command can still be rejected at handling time.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateItemCommand(itemID, "Pen", decimal.NewFromFloat(1.50), nil, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewCreateItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create item: %w", err)
//	}
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	price       decimal.Decimal
	description *string
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to add a new catalog item.
// Validates that the item ID is properly constructed; value invariants such
// as a non-blank name and positive price belong to the domain.
func NewCreateItemCommand(
	itemID kernel.UUID,
	name string,
	price decimal.Decimal,
	description *string,
	stock int,
) (CreateItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{
		itemID:      itemID,
		name:        name,
		price:       price,
		description: description,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the display name for the new item.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Price returns the unit price for the new item.
func (c CreateItemCommand) Price() decimal.Decimal {
	return c.price
}

// Description returns the optional description for the new item.
func (c CreateItemCommand) Description() *string {
	return c.description
}

// Stock returns the initial stock amount for the new item.
func (c CreateItemCommand) Stock() int {
	return c.stock
}
