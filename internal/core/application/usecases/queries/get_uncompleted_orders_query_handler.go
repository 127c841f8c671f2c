package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves open orders from the database.
// Uses direct SQL against the snapshot table in the CQRS pattern.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

type orderRow struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Status int
}

// Handle executes the query to retrieve all orders outside a terminal status.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY id
	`, int(orderbook.Completed), int(orderbook.Discarded), int(orderbook.Refund)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row orderRow, _ int) GetUncompletedOrdersQueryResponse {
		return GetUncompletedOrdersQueryResponse{
			ID:     kernel.UUIDFromUUID(row.ID),
			UserID: kernel.UUIDFromUUID(row.UserID),
			Status: orderbook.Status(row.Status).String(),
		}
	}), nil
}
