package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetItemsQueryHandler retrieves the item catalog from the database.
// Uses direct SQL against the snapshot table in the CQRS pattern.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for catalog retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

type itemRow struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	Description *string
	Stock       int
}

// Handle executes the query to retrieve all catalog items.
// Results are sorted by name for consistent output.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]GetItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []itemRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description,
			stock
		FROM items
		ORDER BY name, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row itemRow, _ int) GetItemsQueryResponse {
		return GetItemsQueryResponse{
			ID:          kernel.UUIDFromUUID(row.ID),
			Name:        row.Name,
			Price:       row.Price,
			Description: row.Description,
			Stock:       row.Stock,
		}
	}), nil
}
