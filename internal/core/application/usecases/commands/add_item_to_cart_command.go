package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrAddItemToCartCommandIsNotConstructed = errors.New(
	"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
)

// AddItemToCartCommand represents a request to add one unit of an item to an
// order's cart. Repeating the command accumulates the quantity.
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add an item to a cart.
func NewAddItemToCartCommand(orderID, itemID kernel.UUID) (AddItemToCartCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return AddItemToCartCommand{}, err
	}

	return AddItemToCartCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddItemToCartCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to add.
func (c AddItemToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}
