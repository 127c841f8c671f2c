package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents a purchasable catalog entry.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Name must not be blank
//   - Price must be greater than zero
//   - Stock amount must not be negative
//   - Creation timestamp is immutable
//
// Items are owned exclusively by the Catalog aggregate; orders reference them
// by id only. All mutation goes through facts applied by the Catalog.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// name is the display name (never blank)
	name string

	// price is the unit price (always > 0)
	price decimal.Decimal

	// description is optional free text (nil when unset)
	description *string

	// stock is the amount currently in stock (never negative)
	stock int

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// NewItem creates a new Item instance with validation. This is the only way to
// create a valid Item, ensuring all business invariants hold.
func NewItem(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	description *string,
	stock int,
	createdAt time.Time,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setStock(stock),
		item.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage.
// The restored item behaves identically to one created through NewItem.
func RestoreItem(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	description *string,
	stock int,
	createdAt time.Time,
) (*Item, error) {
	return NewItem(id, name, price, description, stock, createdAt)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's unit price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Description returns the item's optional description.
// Returns nil if no description is set.
func (i *Item) Description() *string {
	return i.description
}

// Stock returns the amount of the item currently in stock.
func (i *Item) Stock() int {
	return i.stock
}

// CreatedAt returns the immutable creation timestamp.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if err := validateStock(stock); err != nil {
		return err
	}
	i.stock = stock
	return nil
}

func (i *Item) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	i.createdAt = createdAt
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsInvalidErrorWithCause("name", errors.New("name of item must not be blank"))
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	return nil
}
