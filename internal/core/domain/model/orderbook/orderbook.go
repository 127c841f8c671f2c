package orderbook

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrOrderBookIsNotConstructed is returned when using an improperly initialized OrderBook.
var ErrOrderBookIsNotConstructed = errors.New("OrderBook must be created via NewOrderBook constructor")

// ItemChecker is the catalog's existence query consumed during cart-affecting
// command validation. It is satisfied by *catalog.Catalog.
type ItemChecker interface {
	// Contains reports whether an item with the given id currently exists.
	Contains(id kernel.UUID) bool
}

// OrderBook is the aggregate root owning the order entity store and the order
// lifecycle state machine.
//
// Like the Catalog, every operation is split into two explicit phases:
// command methods validate against current state and produce a typed fact
// without mutating anything, and Apply is the only mutation path. Replaying a
// persisted fact sequence through Apply reconstructs state without
// re-running validation.
//
// The order book does not own items. It validates cart contents through the
// ItemChecker existence query and reacts to catalog item deletion by
// producing the cart-stripping facts itself (RemoveDeletedItem), which keeps
// each aggregate the single writer of its own state.
type OrderBook struct {
	orders map[kernel.UUID]*Order
	items  ItemChecker
	guard  guard.ConstructorGuard
}

// NewOrderBook creates an empty order book validating item references
// against the given checker.
func NewOrderBook(items ItemChecker) *OrderBook {
	return &OrderBook{
		orders: make(map[kernel.UUID]*Order),
		items:  items,
		guard:  guard.NewConstructorGuard(),
	}
}

// RestoreOrderBook reconstructs an order book from persisted orders.
func RestoreOrderBook(items ItemChecker, orders []*Order) (*OrderBook, error) {
	b := NewOrderBook(items)
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, err
		}
		b.orders[order.ID()] = order
	}
	return b, nil
}

// Validate ensures the OrderBook instance was properly constructed.
func (b *OrderBook) Validate() error {
	if b == nil {
		return ErrOrderBookIsNotConstructed
	}
	return b.guard.Validate(ErrOrderBookIsNotConstructed)
}

// Order returns the order with the given id.
// Returns an ObjectNotFoundError if the id is unknown.
func (b *OrderBook) Order(id kernel.UUID) (*Order, error) {
	order, ok := b.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order, nil
}

// Orders returns all orders currently in the book.
// The returned slice is a copy to prevent external modification.
func (b *OrderBook) Orders() []*Order {
	out := make([]*Order, 0, len(b.orders))
	for _, order := range b.orders {
		out = append(out, order)
	}
	return out
}

// CreateOrder validates the creation of a new order and produces an
// OrderCreated fact.
//
// Fails with:
//   - ObjectAlreadyExistsError if the order id is in use
//   - ErrCartIsEmpty if the cart has no rows
//   - ValueIsInvalidError if any quantity is negative
//   - ObjectNotFoundError if any cart item id does not exist in the catalog
func (b *OrderBook) CreateOrder(
	orderID, userID kernel.UUID,
	cart map[kernel.UUID]int,
) (OrderCreated, error) {
	if _, ok := b.orders[orderID]; ok {
		return OrderCreated{}, errs.NewObjectAlreadyExistsError("order", orderID.String())
	}

	now := time.Now().UTC()
	candidate, err := NewOrder(orderID, userID, cart, now)
	if err != nil {
		return OrderCreated{}, err
	}

	for itemID := range cart {
		if !b.items.Contains(itemID) {
			return OrderCreated{}, errs.NewObjectNotFoundError("item", itemID.String())
		}
	}

	return OrderCreated{
		OrderID: orderID,
		UserID:  userID,
		Cart:    candidate.Cart(),
		At:      now,
	}, nil
}

// DeleteOrder validates the removal of an order and produces an OrderDeleted
// fact. Fails with ObjectNotFoundError if the id is unknown.
//
// Deletion is deliberately not gated by status: it is the administrative
// escape hatch the system has always had, usable even on paid or shipping
// orders.
func (b *OrderBook) DeleteOrder(orderID kernel.UUID) (OrderDeleted, error) {
	if _, err := b.Order(orderID); err != nil {
		return OrderDeleted{}, err
	}

	return OrderDeleted{OrderID: orderID, At: time.Now().UTC()}, nil
}

// AddItem validates adding one unit of an item to an order's cart and
// produces a CartItemAdded fact. Re-adding an item already in the cart is not
// an error: applying the fact accumulates the quantity by one.
//
// Fails with ObjectNotFoundError if the order id is unknown or the item does
// not exist in the catalog.
func (b *OrderBook) AddItem(orderID, itemID kernel.UUID) (CartItemAdded, error) {
	if _, err := b.Order(orderID); err != nil {
		return CartItemAdded{}, err
	}
	if !b.items.Contains(itemID) {
		return CartItemAdded{}, errs.NewObjectNotFoundError("item", itemID.String())
	}

	return CartItemAdded{OrderID: orderID, ItemID: itemID, At: time.Now().UTC()}, nil
}

// RemoveItem validates removing an item's cart entry and produces a
// CartItemRemoved fact.
//
// Fails with ObjectNotFoundError if the order id is unknown, the item does
// not exist in the catalog, or the item has no current cart entry.
func (b *OrderBook) RemoveItem(orderID, itemID kernel.UUID) (CartItemRemoved, error) {
	order, err := b.Order(orderID)
	if err != nil {
		return CartItemRemoved{}, err
	}
	if !b.items.Contains(itemID) {
		return CartItemRemoved{}, errs.NewObjectNotFoundError("item", itemID.String())
	}
	if !order.ContainsItem(itemID) {
		return CartItemRemoved{}, errs.NewObjectNotFoundError("cart item", itemID.String())
	}

	return CartItemRemoved{OrderID: orderID, ItemID: itemID, At: time.Now().UTC()}, nil
}

// SetQuantity validates setting the absolute quantity of a cart entry and
// produces a CartQuantityChanged fact. A new quantity of zero removes the
// entry when applied.
//
// Fails with ObjectNotFoundError if the order id is unknown, the item does
// not exist in the catalog, or the item has no current cart entry; fails with
// ValueIsInvalidError if the quantity is negative.
func (b *OrderBook) SetQuantity(orderID, itemID kernel.UUID, newQuantity int) (CartQuantityChanged, error) {
	order, err := b.Order(orderID)
	if err != nil {
		return CartQuantityChanged{}, err
	}
	if !b.items.Contains(itemID) {
		return CartQuantityChanged{}, errs.NewObjectNotFoundError("item", itemID.String())
	}
	if !order.ContainsItem(itemID) {
		return CartQuantityChanged{}, errs.NewObjectNotFoundError("cart item", itemID.String())
	}
	if err := validateQuantity(newQuantity); err != nil {
		return CartQuantityChanged{}, err
	}

	return CartQuantityChanged{
		OrderID:     orderID,
		ItemID:      itemID,
		NewQuantity: newQuantity,
		At:          time.Now().UTC(),
	}, nil
}

// ChangeStatus validates a lifecycle transition and produces an
// OrderStatusChanged fact.
//
// Fails with ObjectNotFoundError if the order id is unknown, or
// InvalidTransitionError when the state machine forbids the move or the
// order has no delivery slot while transitioning to Paid.
func (b *OrderBook) ChangeStatus(orderID kernel.UUID, newStatus Status) (OrderStatusChanged, error) {
	order, err := b.Order(orderID)
	if err != nil {
		return OrderStatusChanged{}, err
	}

	if _, err := order.status.TransitionTo(newStatus); err != nil {
		return OrderStatusChanged{}, err
	}

	if newStatus == Paid && order.deliverySlot == nil {
		return OrderStatusChanged{}, errs.NewInvalidTransitionErrorWithCause(
			order.status.String(),
			newStatus.String(),
			errors.New("delivery slot is not set"),
		)
	}

	return OrderStatusChanged{OrderID: orderID, NewStatus: newStatus, At: time.Now().UTC()}, nil
}

// AssignDeliverySlot validates the assignment of a delivery window and
// produces a DeliverySlotAssigned fact. The machine permits assignment in any
// status, but only a slot assigned before the Booked -> Paid transition makes
// that transition reachable.
//
// Fails with ObjectNotFoundError if the order id is unknown, or with the
// slot's own validation error.
func (b *OrderBook) AssignDeliverySlot(orderID kernel.UUID, slot kernel.TimeSlot) (DeliverySlotAssigned, error) {
	if _, err := b.Order(orderID); err != nil {
		return DeliverySlotAssigned{}, err
	}
	if err := slot.Validate(); err != nil {
		return DeliverySlotAssigned{}, err
	}

	return DeliverySlotAssigned{
		OrderID: orderID,
		Start:   slot.Start(),
		End:     slot.End(),
		At:      time.Now().UTC(),
	}, nil
}

// NotifyAbandonedCart validates firing the abandoned cart reminder and
// produces an AbandonedCartNotified fact. The reminder is an observability
// signal only; applying the fact changes no state.
//
// Fails with ObjectNotFoundError if the order id is unknown, or
// InvalidTransitionError unless the order is currently Collecting.
func (b *OrderBook) NotifyAbandonedCart(orderID kernel.UUID) (AbandonedCartNotified, error) {
	order, err := b.Order(orderID)
	if err != nil {
		return AbandonedCartNotified{}, err
	}

	if order.status != Collecting {
		return AbandonedCartNotified{}, errs.NewInvalidTransitionErrorWithCause(
			order.status.String(),
			Collecting.String(),
			errors.New("abandoned cart reminder requires a collecting order"),
		)
	}

	return AbandonedCartNotified{OrderID: orderID, At: time.Now().UTC()}, nil
}

// RemoveDeletedItem produces the cart-stripping facts for a catalog item that
// was deleted: one CartItemRemoved per order whose cart references the item.
// Orders without a reference are untouched. The facts are ordered by order id
// so the resulting log is deterministic.
func (b *OrderBook) RemoveDeletedItem(itemID kernel.UUID) []CartItemRemoved {
	now := time.Now().UTC()

	var affected []*Order
	for _, order := range b.orders {
		if order.ContainsItem(itemID) {
			affected = append(affected, order)
		}
	}
	sort.Slice(affected, func(i, j int) bool {
		return affected[i].ID().String() < affected[j].ID().String()
	})

	facts := make([]CartItemRemoved, 0, len(affected))
	for _, order := range affected {
		facts = append(facts, CartItemRemoved{OrderID: order.ID(), ItemID: itemID, At: now})
	}
	return facts
}

// Apply mutates order book state according to a previously produced fact.
// Apply performs no validation: facts are only ever produced by validated
// commands, and replay must reconstruct state without re-running validation.
// Unknown fact types return an error; facts for an order id that is not
// present are ignored, which keeps partial replays harmless.
func (b *OrderBook) Apply(fact kernel.Fact) error {
	switch f := fact.(type) {
	case OrderCreated:
		order := &Order{
			id:        f.OrderID,
			userID:    f.UserID,
			cart:      make(map[kernel.UUID]int, len(f.Cart)),
			status:    New,
			createdAt: f.At,
			guard:     guard.NewConstructorGuard(),
		}
		for itemID, quantity := range f.Cart {
			if quantity > 0 {
				order.cart[itemID] = quantity
			}
		}
		b.orders[f.OrderID] = order
	case OrderDeleted:
		delete(b.orders, f.OrderID)
	case OrderStatusChanged:
		if order, ok := b.orders[f.OrderID]; ok {
			order.status = f.NewStatus
		}
	case DeliverySlotAssigned:
		order, ok := b.orders[f.OrderID]
		if !ok {
			return nil
		}
		slot, err := kernel.NewTimeSlot(f.Start, f.End)
		if err != nil {
			return err
		}
		order.deliverySlot = &slot
	case CartItemAdded:
		if order, ok := b.orders[f.OrderID]; ok {
			order.cart[f.ItemID]++
		}
	case CartItemRemoved:
		if order, ok := b.orders[f.OrderID]; ok {
			delete(order.cart, f.ItemID)
		}
	case CartQuantityChanged:
		if order, ok := b.orders[f.OrderID]; ok {
			if f.NewQuantity == 0 {
				delete(order.cart, f.ItemID)
			} else {
				order.cart[f.ItemID] = f.NewQuantity
			}
		}
	case AbandonedCartNotified:
		// observability signal only
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"fact",
			fmt.Errorf("%s is not an order book fact", fact.FactName()),
		)
	}

	return nil
}

// Replay applies a fact sequence in original order.
// Used to rebuild order book state from the persisted fact log.
func (b *OrderBook) Replay(facts []kernel.Fact) error {
	for _, fact := range facts {
		if err := b.Apply(fact); err != nil {
			return err
		}
	}
	return nil
}
