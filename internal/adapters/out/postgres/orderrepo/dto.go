// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order book aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// Cart lines live in a child table keyed by order id; the delivery slot is
// flattened into two nullable timestamp columns that are set together.
type OrderDTO struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status        int           `gorm:"type:int;not null;index"`
	DeliveryStart *time.Time    `gorm:"type:timestamptz"`
	DeliveryEnd   *time.Time    `gorm:"type:timestamptz"`
	CreatedAt     time.Time     `gorm:"not null"`
	UpdatedAt     time.Time     `gorm:"not null"`
	CartItems     []CartItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CartItemDTO represents one cart line of an order.
// The composite primary key keeps at most one row per order and item.
type CartItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
// Overrides GORM's default naming convention to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts an order domain entity to its database representation.
// Maps the cart to child rows and the optional delivery slot to column pairs.
func fromDomain(order *orderbook.Order) OrderDTO {
	orderID := order.ID().Bytes()

	cart := order.Cart()
	cartItems := make([]CartItemDTO, 0, len(cart))
	for itemID, quantity := range cart {
		cartItems = append(cartItems, CartItemDTO{
			OrderID:  orderID,
			ItemID:   itemID.Bytes(),
			Quantity: quantity,
		})
	}

	var deliveryStart, deliveryEnd *time.Time
	if slot := order.DeliverySlot(); slot != nil {
		start, end := slot.Start(), slot.End()
		deliveryStart, deliveryEnd = &start, &end
	}

	return OrderDTO{
		ID:            orderID,
		UserID:        order.UserID().Bytes(),
		Status:        int(order.Status()),
		DeliveryStart: deliveryStart,
		DeliveryEnd:   deliveryEnd,
		CreatedAt:     order.CreatedAt(),
		CartItems:     cartItems,
	}
}

// toDomain converts a database DTO to an order domain entity.
// Reconstructs the complete entity including cart and delivery slot using RestoreOrder.
func toDomain(dto OrderDTO) (*orderbook.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	cart := make(map[kernel.UUID]int, len(dto.CartItems))
	for _, line := range dto.CartItems {
		itemID, lineErr := kernel.UUIDFromBytes(line.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		cart[itemID] = line.Quantity
	}

	var deliverySlot *kernel.TimeSlot
	if dto.DeliveryStart != nil && dto.DeliveryEnd != nil {
		slot, slotErr := kernel.NewTimeSlot(*dto.DeliveryStart, *dto.DeliveryEnd)
		if slotErr != nil {
			return nil, slotErr
		}
		deliverySlot = &slot
	}

	return orderbook.RestoreOrder(
		id,
		userID,
		cart,
		deliverySlot,
		orderbook.Status(dto.Status),
		dto.CreatedAt,
	)
}
