package orderbook

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCartIsEmpty is returned when attempting to create an order with no cart rows.
	ErrCartIsEmpty = errors.New("cannot create an order with an empty cart")
)

// Order represents a shopping order in the system.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning user id
//   - Cart quantities are never negative; a quantity of zero means the entry
//     is absent
//   - The delivery slot is optional and replaced only as a whole
//   - Status transitions follow the state machine defined by Status
//   - Creation timestamp is immutable
//
// Orders are owned exclusively by the OrderBook aggregate; all mutation goes
// through facts applied by the book.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID identifies the owning user
	userID kernel.UUID

	// cart maps item ids to requested quantities
	cart map[kernel.UUID]int

	// deliverySlot is the assigned delivery window (nil if unassigned)
	deliverySlot *kernel.TimeSlot

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. The order starts in
// the New status with no delivery slot.
//
// The cart must contain at least one row and every quantity must be
// non-negative. Whether the referenced items exist is the order book's
// concern, since it requires the catalog's existence query.
func NewOrder(id, userID kernel.UUID, cart map[kernel.UUID]int, createdAt time.Time) (*Order, error) {
	order := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setCart(cart),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder it accepts any valid status and an empty cart, since item
// deletion may legitimately leave a persisted order without cart rows.
func RestoreOrder(
	id, userID kernel.UUID,
	cart map[kernel.UUID]int,
	deliverySlot *kernel.TimeSlot,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if deliverySlot != nil {
		if err := deliverySlot.Validate(); err != nil {
			return nil, err
		}
		slot := *deliverySlot
		order.deliverySlot = &slot
	}

	order.cart = make(map[kernel.UUID]int, len(cart))
	for itemID, quantity := range cart {
		if err := validateQuantity(quantity); err != nil {
			return nil, err
		}
		if quantity > 0 {
			order.cart[itemID] = quantity
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the id of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliverySlot returns the assigned delivery window.
// Returns nil if no slot is assigned.
func (o *Order) DeliverySlot() *kernel.TimeSlot {
	if o.deliverySlot == nil {
		return nil
	}
	slot := *o.deliverySlot
	return &slot
}

// Cart returns the order's cart contents.
// The returned map is a copy to prevent external modification.
func (o *Order) Cart() map[kernel.UUID]int {
	out := make(map[kernel.UUID]int, len(o.cart))
	for itemID, quantity := range o.cart {
		out[itemID] = quantity
	}
	return out
}

// Quantity returns the requested quantity for the given item id and whether
// the item has a cart entry at all.
func (o *Order) Quantity(itemID kernel.UUID) (int, bool) {
	quantity, ok := o.cart[itemID]
	return quantity, ok
}

// ContainsItem reports whether the cart currently references the given item id.
func (o *Order) ContainsItem(itemID kernel.UUID) bool {
	_, ok := o.cart[itemID]
	return ok
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setCart(cart map[kernel.UUID]int) error {
	if len(cart) == 0 {
		return ErrCartIsEmpty
	}

	o.cart = make(map[kernel.UUID]int, len(cart))
	for itemID, quantity := range cart {
		if err := itemID.Validate(); err != nil {
			return err
		}
		if err := validateQuantity(quantity); err != nil {
			return err
		}
		if quantity > 0 {
			o.cart[itemID] = quantity
		}
	}

	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	return nil
}
