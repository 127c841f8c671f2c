package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrChangeItemDescriptionCommandIsNotConstructed = errors.New(
	"ChangeItemDescriptionCommand must be created via NewChangeItemDescriptionCommand constructor",
)

// ChangeItemDescriptionCommand represents a request to set or clear a catalog
// item's description. A nil description clears the current one.
type ChangeItemDescriptionCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	newDescription *string

	guard guard.ConstructorGuard
}

// NewChangeItemDescriptionCommand creates a command to change an item's description.
func NewChangeItemDescriptionCommand(
	itemID kernel.UUID,
	newDescription *string,
) (ChangeItemDescriptionCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ChangeItemDescriptionCommand{}, err
	}

	return ChangeItemDescriptionCommand{
		itemID:         itemID,
		newDescription: newDescription,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemDescriptionCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemDescriptionCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to change.
func (c ChangeItemDescriptionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewDescription returns the requested description, nil meaning clear.
func (c ChangeItemDescriptionCommand) NewDescription() *string {
	return c.newDescription
}
