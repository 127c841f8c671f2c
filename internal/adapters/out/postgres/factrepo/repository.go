package factrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/orderbook"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFactRepository implements FactRepository using GORM.
type GormFactRepository struct {
	db *gorm.DB
}

// NewGormFactRepository creates a new GORM fact repository.
func NewGormFactRepository(db *gorm.DB) *GormFactRepository {
	return &GormFactRepository{db: db}
}

// Append adds facts to the end of the log in the order given.
func (r *GormFactRepository) Append(ctx context.Context, facts ...kernel.Fact) error {
	if len(facts) == 0 {
		return nil
	}

	dtos := make([]FactDTO, 0, len(facts))
	for _, fact := range facts {
		payload, err := json.Marshal(fact)
		if err != nil {
			return err
		}

		dtos = append(dtos, FactDTO{
			AggregateID: fact.AggregateID().Bytes(),
			Name:        fact.FactName(),
			Payload:     string(payload),
			OccurredAt:  fact.OccurredAt(),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetForAggregate retrieves every stored fact for the aggregate, oldest first.
func (r *GormFactRepository) GetForAggregate(
	ctx context.Context,
	aggregateID kernel.UUID,
) ([]kernel.Fact, error) {
	if err := aggregateID.Validate(); err != nil {
		return nil, err
	}

	var dtos []FactDTO
	err := r.db.WithContext(ctx).
		Where("aggregate_id = ?", aggregateID.Bytes()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	facts := make([]kernel.Fact, 0, len(dtos))
	for _, dto := range dtos {
		fact, decodeErr := decodeFact(dto.Name, []byte(dto.Payload))
		if decodeErr != nil {
			return nil, decodeErr
		}
		facts = append(facts, fact)
	}

	return facts, nil
}

// decodeFact reconstructs a typed fact from its wire name and JSON payload.
func decodeFact(name string, payload []byte) (kernel.Fact, error) {
	var (
		fact kernel.Fact
		err  error
	)

	switch name {
	case catalog.ItemCreatedFactName:
		fact, err = unmarshalFact[catalog.ItemCreated](payload)
	case catalog.ItemDeletedFactName:
		fact, err = unmarshalFact[catalog.ItemDeleted](payload)
	case catalog.ItemNameUpdatedFactName:
		fact, err = unmarshalFact[catalog.ItemNameUpdated](payload)
	case catalog.ItemDescriptionUpdatedFactName:
		fact, err = unmarshalFact[catalog.ItemDescriptionUpdated](payload)
	case catalog.ItemPriceUpdatedFactName:
		fact, err = unmarshalFact[catalog.ItemPriceUpdated](payload)
	case catalog.ItemStockUpdatedFactName:
		fact, err = unmarshalFact[catalog.ItemStockUpdated](payload)
	case orderbook.OrderCreatedFactName:
		fact, err = unmarshalFact[orderbook.OrderCreated](payload)
	case orderbook.OrderDeletedFactName:
		fact, err = unmarshalFact[orderbook.OrderDeleted](payload)
	case orderbook.OrderStatusChangedFactName:
		fact, err = unmarshalFact[orderbook.OrderStatusChanged](payload)
	case orderbook.DeliverySlotAssignedFactName:
		fact, err = unmarshalFact[orderbook.DeliverySlotAssigned](payload)
	case orderbook.CartItemAddedFactName:
		fact, err = unmarshalFact[orderbook.CartItemAdded](payload)
	case orderbook.CartItemRemovedFactName:
		fact, err = unmarshalFact[orderbook.CartItemRemoved](payload)
	case orderbook.CartQuantityChangedFactName:
		fact, err = unmarshalFact[orderbook.CartQuantityChanged](payload)
	case orderbook.AbandonedCartNotifiedFactName:
		fact, err = unmarshalFact[orderbook.AbandonedCartNotified](payload)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"fact",
			fmt.Errorf("%s is not a known fact name", name),
		)
	}

	return fact, err
}

func unmarshalFact[T kernel.Fact](payload []byte) (T, error) {
	var fact T
	if err := json.Unmarshal(payload, &fact); err != nil {
		return fact, err
	}
	return fact, nil
}
