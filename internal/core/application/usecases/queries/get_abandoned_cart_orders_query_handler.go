package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetAbandonedCartOrdersQueryHandler retrieves stale collecting orders from
// the database. Uses direct SQL against the snapshot table in the CQRS pattern.
type GetAbandonedCartOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAbandonedCartOrdersQueryHandler creates a handler for abandoned cart
// queries. Requires a GORM database connection for query execution.
func NewGetAbandonedCartOrdersQueryHandler(db *gorm.DB) GetAbandonedCartOrdersQueryHandler {
	return GetAbandonedCartOrdersQueryHandler{db: db}
}

type abandonedOrderRow struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// Handle executes the query to retrieve collecting orders untouched since
// before the cutoff.
func (h GetAbandonedCartOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAbandonedCartOrdersQuery,
) ([]GetAbandonedCartOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []abandonedOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id
		FROM orders
		WHERE status = ?
		  AND updated_at < ?
		ORDER BY id
	`, int(orderbook.Collecting), query.Cutoff()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row abandonedOrderRow, _ int) GetAbandonedCartOrdersQueryResponse {
		return GetAbandonedCartOrdersQueryResponse{
			ID:     kernel.UUIDFromUUID(row.ID),
			UserID: kernel.UUIDFromUUID(row.UserID),
		}
	}), nil
}
