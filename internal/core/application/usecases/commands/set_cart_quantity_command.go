package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrSetCartQuantityCommandIsNotConstructed = errors.New(
	"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
)

// SetCartQuantityCommand represents a request to set the absolute quantity of
// a cart entry. A quantity of zero removes the entry; negative quantities are
// rejected by the OrderBook.
type SetCartQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetCartQuantityCommand creates a command to set a cart entry's quantity.
func NewSetCartQuantityCommand(orderID, itemID kernel.UUID, quantity int) (SetCartQuantityCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return SetCartQuantityCommand{}, err
	}

	return SetCartQuantityCommand{
		orderID:  orderID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c SetCartQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the cart item.
func (c SetCartQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the requested absolute quantity.
func (c SetCartQuantityCommand) Quantity() int {
	return c.quantity
}
