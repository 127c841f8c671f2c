package catalog

import (
	"time"

	"shop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Wire names of the catalog facts. These are stable identifiers used by the
// fact log; renaming one breaks replay of previously persisted facts.
const (
	ItemCreatedFactName            = "ITEM_CREATED_EVENT"
	ItemDeletedFactName            = "ITEM_DELETED_EVENT"
	ItemNameUpdatedFactName        = "ITEM_NAME_UPDATED_EVENT"
	ItemDescriptionUpdatedFactName = "ITEM_DESCRIPTION_UPDATED_EVENT"
	ItemPriceUpdatedFactName       = "ITEM_PRICE_UPDATED_EVENT"
	ItemStockUpdatedFactName       = "ITEM_STOCK_AMOUNT_UPDATED_EVENT"
)

// ItemCreated records the creation of a catalog item.
type ItemCreated struct {
	ItemID      kernel.UUID     `json:"item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	Stock       int             `json:"stock"`
	At          time.Time       `json:"at"`
}

func (f ItemCreated) FactName() string         { return ItemCreatedFactName }
func (f ItemCreated) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemCreated) OccurredAt() time.Time    { return f.At }

// ItemDeleted records the removal of a catalog item.
// The order book consumes this fact to strip the item from every cart.
type ItemDeleted struct {
	ItemID kernel.UUID `json:"item_id"`
	At     time.Time   `json:"at"`
}

func (f ItemDeleted) FactName() string         { return ItemDeletedFactName }
func (f ItemDeleted) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemDeleted) OccurredAt() time.Time    { return f.At }

// ItemNameUpdated records a rename of a catalog item.
type ItemNameUpdated struct {
	ItemID  kernel.UUID `json:"item_id"`
	NewName string      `json:"new_name"`
	At      time.Time   `json:"at"`
}

func (f ItemNameUpdated) FactName() string         { return ItemNameUpdatedFactName }
func (f ItemNameUpdated) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemNameUpdated) OccurredAt() time.Time    { return f.At }

// ItemDescriptionUpdated records a description change of a catalog item.
// A nil NewDescription clears the description.
type ItemDescriptionUpdated struct {
	ItemID         kernel.UUID `json:"item_id"`
	NewDescription *string     `json:"new_description,omitempty"`
	At             time.Time   `json:"at"`
}

func (f ItemDescriptionUpdated) FactName() string         { return ItemDescriptionUpdatedFactName }
func (f ItemDescriptionUpdated) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemDescriptionUpdated) OccurredAt() time.Time    { return f.At }

// ItemPriceUpdated records a price change of a catalog item.
type ItemPriceUpdated struct {
	ItemID   kernel.UUID     `json:"item_id"`
	NewPrice decimal.Decimal `json:"new_price"`
	At       time.Time       `json:"at"`
}

func (f ItemPriceUpdated) FactName() string         { return ItemPriceUpdatedFactName }
func (f ItemPriceUpdated) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemPriceUpdated) OccurredAt() time.Time    { return f.At }

// ItemStockUpdated records a stock amount change of a catalog item.
type ItemStockUpdated struct {
	ItemID   kernel.UUID `json:"item_id"`
	NewStock int         `json:"new_stock"`
	At       time.Time   `json:"at"`
}

func (f ItemStockUpdated) FactName() string         { return ItemStockUpdatedFactName }
func (f ItemStockUpdated) AggregateID() kernel.UUID { return f.ItemID }
func (f ItemStockUpdated) OccurredAt() time.Time    { return f.At }
