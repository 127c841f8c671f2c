package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrRenameItemCommandIsNotConstructed = errors.New(
	"RenameItemCommand must be created via NewRenameItemCommand constructor",
)

// RenameItemCommand represents a request to change a catalog item's name.
type RenameItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	newName string

	guard guard.ConstructorGuard
}

// NewRenameItemCommand creates a command to rename a catalog item.
// The non-blank name invariant is enforced by the Catalog aggregate.
func NewRenameItemCommand(itemID kernel.UUID, newName string) (RenameItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RenameItemCommand{}, err
	}

	return RenameItemCommand{
		itemID:  itemID,
		newName: newName,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameItemCommand) Validate() error {
	return c.guard.Validate(ErrRenameItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to rename.
func (c RenameItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewName returns the requested display name.
func (c RenameItemCommand) NewName() string {
	return c.newName
}
