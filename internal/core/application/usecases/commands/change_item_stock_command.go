package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrChangeItemStockCommandIsNotConstructed = errors.New(
	"ChangeItemStockCommand must be created via NewChangeItemStockCommand constructor",
)

// ChangeItemStockCommand represents a request to set a catalog item's stock
// amount. The non-negative invariant is enforced by the Catalog.
type ChangeItemStockCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	newStock int

	guard guard.ConstructorGuard
}

// NewChangeItemStockCommand creates a command to change an item's stock amount.
func NewChangeItemStockCommand(itemID kernel.UUID, newStock int) (ChangeItemStockCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ChangeItemStockCommand{}, err
	}

	return ChangeItemStockCommand{
		itemID:   itemID,
		newStock: newStock,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemStockCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemStockCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to change.
func (c ChangeItemStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewStock returns the requested stock amount.
func (c ChangeItemStockCommand) NewStock() int {
	return c.newStock
}
