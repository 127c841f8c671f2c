package commands

import (
	"context"
)

// CreateItemCommandHandler handles the business logic for catalog item creation.
//
// Example:
//
//	handler := NewCreateItemCommandHandler(uowFactory)
//	cmd, _ := NewCreateItemCommand(kernel.NewUUID(), "Pen", price, nil, 100)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("item creation failed: %w", err)
//	}
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item creation operations.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item creation command. The Catalog aggregate validates
// the command and produces an ItemCreated fact, which is applied, persisted
// as a snapshot and tracked for the fact log within one transaction.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	cat, err := restoreCatalog(ctx, itemRepo)
	if err != nil {
		return err
	}

	fact, err := cat.CreateItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.Description(), cmd.Stock())
	if err != nil {
		return err
	}
	if err = cat.Apply(fact); err != nil {
		return err
	}

	item, err := cat.Item(cmd.ItemID())
	if err != nil {
		return err
	}
	if err = itemRepo.Add(ctx, item); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
