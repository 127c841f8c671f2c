package catalog

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCatalogIsNotConstructed is returned when using an improperly initialized Catalog.
var ErrCatalogIsNotConstructed = errors.New("Catalog must be created via NewCatalog constructor")

// Catalog is the aggregate root owning the item entity store.
//
// Every operation is split into two explicit phases:
//
//	validate command -> produce fact    (CreateItem, DeleteItem, ...)
//	apply fact -> mutate state          (Apply)
//
// Command methods never mutate state: they validate against the current
// in-memory state and return a typed fact describing what happened. Apply is
// the only mutation path and performs no validation, which makes replaying a
// persisted fact sequence reconstruct state exactly.
type Catalog struct {
	items map[kernel.UUID]*Item
	guard guard.ConstructorGuard
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items: make(map[kernel.UUID]*Item),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCatalog reconstructs a catalog from persisted items.
func RestoreCatalog(items []*Item) (*Catalog, error) {
	c := NewCatalog()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		c.items[item.ID()] = item
	}
	return c, nil
}

// Validate ensures the Catalog instance was properly constructed.
func (c *Catalog) Validate() error {
	if c == nil {
		return ErrCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrCatalogIsNotConstructed)
}

// Contains reports whether an item with the given id currently exists.
// The order book uses this as its existence query during cart validation.
func (c *Catalog) Contains(id kernel.UUID) bool {
	_, ok := c.items[id]
	return ok
}

// Item returns the item with the given id.
// Returns an ObjectNotFoundError if the id is unknown.
func (c *Catalog) Item(id kernel.UUID) (*Item, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", id.String())
	}
	return item, nil
}

// Items returns all items currently in the catalog.
// The returned slice is a copy to prevent external modification.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out
}

// CreateItem validates the creation of a new item and produces an ItemCreated
// fact. Fails with ObjectAlreadyExistsError if the id is in use, or
// ValueIsInvalidError if the name is blank, the price is not positive or the
// stock amount is negative.
func (c *Catalog) CreateItem(
	id kernel.UUID,
	name string,
	price decimal.Decimal,
	description *string,
	stock int,
) (ItemCreated, error) {
	if c.Contains(id) {
		return ItemCreated{}, errs.NewObjectAlreadyExistsError("item", id.String())
	}

	now := time.Now().UTC()
	if _, err := NewItem(id, name, price, description, stock, now); err != nil {
		return ItemCreated{}, err
	}

	return ItemCreated{
		ItemID:      id,
		Name:        name,
		Price:       price,
		Description: description,
		Stock:       stock,
		At:          now,
	}, nil
}

// DeleteItem validates the removal of an item and produces an ItemDeleted
// fact. Fails with ObjectNotFoundError if the id is unknown.
//
// Deletion cascades into every order cart referencing the item; that effect
// belongs to the order book, which consumes the produced fact (see
// orderbook.OrderBook.RemoveDeletedItem).
func (c *Catalog) DeleteItem(id kernel.UUID) (ItemDeleted, error) {
	if _, err := c.Item(id); err != nil {
		return ItemDeleted{}, err
	}

	return ItemDeleted{ItemID: id, At: time.Now().UTC()}, nil
}

// RenameItem validates a rename and produces an ItemNameUpdated fact.
// Fails with ObjectNotFoundError if the id is unknown, or ValueIsInvalidError
// if the new name is blank.
func (c *Catalog) RenameItem(id kernel.UUID, newName string) (ItemNameUpdated, error) {
	if _, err := c.Item(id); err != nil {
		return ItemNameUpdated{}, err
	}
	if err := validateName(newName); err != nil {
		return ItemNameUpdated{}, err
	}

	return ItemNameUpdated{ItemID: id, NewName: newName, At: time.Now().UTC()}, nil
}

// ChangeDescription validates a description change and produces an
// ItemDescriptionUpdated fact. A nil description clears the current one.
// Fails with ObjectNotFoundError if the id is unknown.
func (c *Catalog) ChangeDescription(id kernel.UUID, newDescription *string) (ItemDescriptionUpdated, error) {
	if _, err := c.Item(id); err != nil {
		return ItemDescriptionUpdated{}, err
	}

	return ItemDescriptionUpdated{ItemID: id, NewDescription: newDescription, At: time.Now().UTC()}, nil
}

// ChangePrice validates a price change and produces an ItemPriceUpdated fact.
// Fails with ObjectNotFoundError if the id is unknown, or ValueIsInvalidError
// if the new price is not positive.
func (c *Catalog) ChangePrice(id kernel.UUID, newPrice decimal.Decimal) (ItemPriceUpdated, error) {
	if _, err := c.Item(id); err != nil {
		return ItemPriceUpdated{}, err
	}
	if err := validatePrice(newPrice); err != nil {
		return ItemPriceUpdated{}, err
	}

	return ItemPriceUpdated{ItemID: id, NewPrice: newPrice, At: time.Now().UTC()}, nil
}

// ChangeStock validates a stock change and produces an ItemStockUpdated fact.
// Fails with ObjectNotFoundError if the id is unknown, or ValueIsInvalidError
// if the new amount is negative.
func (c *Catalog) ChangeStock(id kernel.UUID, newStock int) (ItemStockUpdated, error) {
	if _, err := c.Item(id); err != nil {
		return ItemStockUpdated{}, err
	}
	if err := validateStock(newStock); err != nil {
		return ItemStockUpdated{}, err
	}

	return ItemStockUpdated{ItemID: id, NewStock: newStock, At: time.Now().UTC()}, nil
}

// Apply mutates catalog state according to a previously produced fact.
// Apply performs no validation: facts are only ever produced by validated
// commands, and replay must reconstruct state without re-running validation.
// Unknown fact types return an error; update facts for an id that is not
// present are ignored, which keeps partial replays harmless.
func (c *Catalog) Apply(fact kernel.Fact) error {
	switch f := fact.(type) {
	case ItemCreated:
		c.items[f.ItemID] = &Item{
			id:          f.ItemID,
			name:        f.Name,
			price:       f.Price,
			description: f.Description,
			stock:       f.Stock,
			createdAt:   f.At,
			guard:       guard.NewConstructorGuard(),
		}
	case ItemDeleted:
		delete(c.items, f.ItemID)
	case ItemNameUpdated:
		if item, ok := c.items[f.ItemID]; ok {
			item.name = f.NewName
		}
	case ItemDescriptionUpdated:
		if item, ok := c.items[f.ItemID]; ok {
			item.description = f.NewDescription
		}
	case ItemPriceUpdated:
		if item, ok := c.items[f.ItemID]; ok {
			item.price = f.NewPrice
		}
	case ItemStockUpdated:
		if item, ok := c.items[f.ItemID]; ok {
			item.stock = f.NewStock
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"fact",
			fmt.Errorf("%s is not a catalog fact", fact.FactName()),
		)
	}

	return nil
}

// Replay applies a fact sequence in original order.
// Used to rebuild catalog state from the persisted fact log.
func (c *Catalog) Replay(facts []kernel.Fact) error {
	for _, fact := range facts {
		if err := c.Apply(fact); err != nil {
			return err
		}
	}
	return nil
}
