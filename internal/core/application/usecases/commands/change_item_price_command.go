package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeItemPriceCommandIsNotConstructed = errors.New(
	"ChangeItemPriceCommand must be created via NewChangeItemPriceCommand constructor",
)

// ChangeItemPriceCommand represents a request to change a catalog item's
// unit price. The positive-price invariant is enforced by the Catalog.
type ChangeItemPriceCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	newPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewChangeItemPriceCommand creates a command to change an item's price.
func NewChangeItemPriceCommand(itemID kernel.UUID, newPrice decimal.Decimal) (ChangeItemPriceCommand, error) {
	if err := itemID.Validate(); err != nil {
		return ChangeItemPriceCommand{}, err
	}

	return ChangeItemPriceCommand{
		itemID:   itemID,
		newPrice: newPrice,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemPriceCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to change.
func (c ChangeItemPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewPrice returns the requested unit price.
func (c ChangeItemPriceCommand) NewPrice() decimal.Decimal {
	return c.newPrice
}
