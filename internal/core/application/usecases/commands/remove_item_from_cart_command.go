package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrRemoveItemFromCartCommandIsNotConstructed = errors.New(
	"RemoveItemFromCartCommand must be created via NewRemoveItemFromCartCommand constructor",
)

// RemoveItemFromCartCommand represents a request to drop an item's cart entry
// entirely, whatever its quantity.
type RemoveItemFromCartCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemFromCartCommand creates a command to remove an item from a cart.
func NewRemoveItemFromCartCommand(orderID, itemID kernel.UUID) (RemoveItemFromCartCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return RemoveItemFromCartCommand{}, err
	}

	return RemoveItemFromCartCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromCartCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c RemoveItemFromCartCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to remove.
func (c RemoveItemFromCartCommand) ItemID() kernel.UUID {
	return c.itemID
}
