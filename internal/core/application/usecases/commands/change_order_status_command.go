package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order through its
// lifecycle. Whether the transition is legal from the order's current status
// is decided by the OrderBook at handling time.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus orderbook.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID is properly constructed and the target status
// is a named, valid status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	newStatus orderbook.Status,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), newStatus.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) NewStatus() orderbook.Status {
	return c.newStatus
}
