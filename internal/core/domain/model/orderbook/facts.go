package orderbook

import (
	"time"

	"shop/internal/core/domain/model/kernel"
)

// Wire names of the order book facts. These are stable identifiers used by
// the fact log; renaming one breaks replay of previously persisted facts.
const (
	OrderCreatedFactName          = "ORDER_CREATED_EVENT"
	OrderStatusChangedFactName    = "ORDER_STATE_CHANGED_EVENT"
	DeliverySlotAssignedFactName  = "DELIVERY_DATE_ADDED_EVENT"
	OrderDeletedFactName          = "ORDER_DELETED"
	CartItemAddedFactName         = "ITEM_TO_ORDER_ADDED"
	CartItemRemovedFactName       = "ITEM_FROM_ORDER_DELETED"
	CartQuantityChangedFactName   = "SET_AMOUNT_IN_CART"
	AbandonedCartNotifiedFactName = "CART_ABANDONED_NOTIFY"
)

// OrderCreated records the creation of an order with its initial cart.
type OrderCreated struct {
	OrderID kernel.UUID         `json:"order_id"`
	UserID  kernel.UUID         `json:"user_id"`
	Cart    map[kernel.UUID]int `json:"cart"`
	At      time.Time           `json:"at"`
}

func (f OrderCreated) FactName() string         { return OrderCreatedFactName }
func (f OrderCreated) AggregateID() kernel.UUID { return f.OrderID }
func (f OrderCreated) OccurredAt() time.Time    { return f.At }

// OrderStatusChanged records a validated lifecycle transition.
type OrderStatusChanged struct {
	OrderID   kernel.UUID `json:"order_id"`
	NewStatus Status      `json:"new_status"`
	At        time.Time   `json:"at"`
}

func (f OrderStatusChanged) FactName() string         { return OrderStatusChangedFactName }
func (f OrderStatusChanged) AggregateID() kernel.UUID { return f.OrderID }
func (f OrderStatusChanged) OccurredAt() time.Time    { return f.At }

// DeliverySlotAssigned records the assignment of a delivery window.
// The slot is always replaced as a whole.
type DeliverySlotAssigned struct {
	OrderID kernel.UUID `json:"order_id"`
	Start   time.Time   `json:"start"`
	End     time.Time   `json:"end"`
	At      time.Time   `json:"at"`
}

func (f DeliverySlotAssigned) FactName() string         { return DeliverySlotAssignedFactName }
func (f DeliverySlotAssigned) AggregateID() kernel.UUID { return f.OrderID }
func (f DeliverySlotAssigned) OccurredAt() time.Time    { return f.At }

// OrderDeleted records the removal of an order.
type OrderDeleted struct {
	OrderID kernel.UUID `json:"order_id"`
	At      time.Time   `json:"at"`
}

func (f OrderDeleted) FactName() string         { return OrderDeletedFactName }
func (f OrderDeleted) AggregateID() kernel.UUID { return f.OrderID }
func (f OrderDeleted) OccurredAt() time.Time    { return f.At }

// CartItemAdded records adding one unit of an item to a cart.
// Applying it increments the existing quantity by one, or inserts a
// quantity of one when the item has no cart entry yet.
type CartItemAdded struct {
	OrderID kernel.UUID `json:"order_id"`
	ItemID  kernel.UUID `json:"item_id"`
	At      time.Time   `json:"at"`
}

func (f CartItemAdded) FactName() string         { return CartItemAddedFactName }
func (f CartItemAdded) AggregateID() kernel.UUID { return f.OrderID }
func (f CartItemAdded) OccurredAt() time.Time    { return f.At }

// CartItemRemoved records the removal of an item's cart entry, either by an
// explicit command or as part of the cascade when the item is deleted from
// the catalog.
type CartItemRemoved struct {
	OrderID kernel.UUID `json:"order_id"`
	ItemID  kernel.UUID `json:"item_id"`
	At      time.Time   `json:"at"`
}

func (f CartItemRemoved) FactName() string         { return CartItemRemovedFactName }
func (f CartItemRemoved) AggregateID() kernel.UUID { return f.OrderID }
func (f CartItemRemoved) OccurredAt() time.Time    { return f.At }

// CartQuantityChanged records setting the absolute quantity of a cart entry.
// A new quantity of zero removes the entry.
type CartQuantityChanged struct {
	OrderID     kernel.UUID `json:"order_id"`
	ItemID      kernel.UUID `json:"item_id"`
	NewQuantity int         `json:"new_quantity"`
	At          time.Time   `json:"at"`
}

func (f CartQuantityChanged) FactName() string         { return CartQuantityChangedFactName }
func (f CartQuantityChanged) AggregateID() kernel.UUID { return f.OrderID }
func (f CartQuantityChanged) OccurredAt() time.Time    { return f.At }

// AbandonedCartNotified records that the abandoned cart reminder fired for a
// collecting order. It carries no state change; applying it is a no-op.
type AbandonedCartNotified struct {
	OrderID kernel.UUID `json:"order_id"`
	At      time.Time   `json:"at"`
}

func (f AbandonedCartNotified) FactName() string         { return AbandonedCartNotifiedFactName }
func (f AbandonedCartNotified) AggregateID() kernel.UUID { return f.OrderID }
func (f AbandonedCartNotified) OccurredAt() time.Time    { return f.At }
