package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its cart lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, order *orderbook.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto := fromDomain(order)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. Cart lines are replaced
// wholesale: a quantity change, an added line and a removed line all reduce
// to deleting the order's rows and recreating them from the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, order *orderbook.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto := fromDomain(order)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"user_id":        dto.UserID,
		"status":         dto.Status,
		"delivery_start": dto.DeliveryStart,
		"delivery_end":   dto.DeliveryEnd,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", order.ID().String())
	}

	if err := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.CartItems) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.CartItems).Error
}

// Remove deletes an order from the database.
// Cart lines go with it through the foreign key cascade.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*orderbook.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("CartItems").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order in the book.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*orderbook.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("CartItems").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*orderbook.Order, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
