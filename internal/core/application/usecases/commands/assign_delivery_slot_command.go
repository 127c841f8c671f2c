package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrAssignDeliverySlotCommandIsNotConstructed = errors.New(
	"AssignDeliverySlotCommand must be created via NewAssignDeliverySlotCommand constructor",
)

// AssignDeliverySlotCommand represents a request to set an order's delivery
// window. The window replaces any previously assigned one as a whole.
type AssignDeliverySlotCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	slot    kernel.TimeSlot

	guard guard.ConstructorGuard
}

// NewAssignDeliverySlotCommand creates a command to assign a delivery window.
// The slot must already be a constructed TimeSlot, so the window invariants
// are checked before the command exists.
func NewAssignDeliverySlotCommand(
	orderID kernel.UUID,
	slot kernel.TimeSlot,
) (AssignDeliverySlotCommand, error) {
	if err := errors.Join(orderID.Validate(), slot.Validate()); err != nil {
		return AssignDeliverySlotCommand{}, err
	}

	return AssignDeliverySlotCommand{
		orderID: orderID,
		slot:    slot,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliverySlotCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliverySlotCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AssignDeliverySlotCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the requested delivery window.
func (c AssignDeliverySlotCommand) Slot() kernel.TimeSlot {
	return c.slot
}
