// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the catalog domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"time"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting catalog items.
// The price column uses numeric to keep exact decimal arithmetic in SQL.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description *string         `gorm:"type:text"`
	Stock       int             `gorm:"type:int;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain entity to its database representation.
// UpdatedAt is left for GORM to maintain on create and update.
func fromDomain(item *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Price:       item.Price(),
		Description: item.Description(),
		Stock:       item.Stock(),
		CreatedAt:   item.CreatedAt(),
	}
}

// toDomain converts a database DTO to an item domain entity.
// Reconstructs the complete entity using RestoreItem.
func toDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(id, dto.Name, dto.Price, dto.Description, dto.Stock, dto.CreatedAt)
}
