package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to remove an item from the catalog.
// Deletion cascades into every order cart referencing the item.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to remove a catalog item.
func NewDeleteItemCommand(itemID kernel.UUID) (DeleteItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return DeleteItemCommand{}, err
	}

	return DeleteItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
