package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order with an initial
// cart. Cart invariants (non-empty, non-negative quantities, items present in
// the catalog) are enforced by the OrderBook aggregate.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, map[kernel.UUID]int{penID: 1})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID
	cart    map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that the order and user IDs are properly constructed.
func NewCreateOrderCommand(
	orderID, userID kernel.UUID,
	cart map[kernel.UUID]int,
) (CreateOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}

	copied := make(map[kernel.UUID]int, len(cart))
	for itemID, quantity := range cart {
		copied[itemID] = quantity
	}

	return CreateOrderCommand{
		orderID: orderID,
		userID:  userID,
		cart:    copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the owning user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Cart returns the initial cart contents.
func (c CreateOrderCommand) Cart() map[kernel.UUID]int {
	return c.cart
}
