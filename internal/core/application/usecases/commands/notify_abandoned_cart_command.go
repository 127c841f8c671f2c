package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrNotifyAbandonedCartCommandIsNotConstructed = errors.New(
	"NotifyAbandonedCartCommand must be created via NewNotifyAbandonedCartCommand constructor",
)

// NotifyAbandonedCartCommand represents a request to fire the abandoned cart
// reminder for a collecting order. Issued by the background job rather than
// an API caller.
type NotifyAbandonedCartCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyAbandonedCartCommand creates a command to fire the abandoned cart reminder.
func NewNotifyAbandonedCartCommand(orderID kernel.UUID) (NotifyAbandonedCartCommand, error) {
	if err := orderID.Validate(); err != nil {
		return NotifyAbandonedCartCommand{}, err
	}

	return NotifyAbandonedCartCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyAbandonedCartCommand) Validate() error {
	return c.guard.Validate(ErrNotifyAbandonedCartCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remind about.
func (c NotifyAbandonedCartCommand) OrderID() kernel.UUID {
	return c.orderID
}
