package commands

import (
	"context"
)

// ChangeItemStockCommandHandler handles item stock amount changes.
type ChangeItemStockCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeItemStockCommandHandler creates a handler for stock change operations.
func NewChangeItemStockCommandHandler(uowFactory CatalogUoWFactory) ChangeItemStockCommandHandler {
	return ChangeItemStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock change through the usual fact cycle.
func (h *ChangeItemStockCommandHandler) Handle(ctx context.Context, cmd ChangeItemStockCommand) error {
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

	fact, err := cat.ChangeStock(cmd.ItemID(), cmd.NewStock())
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
	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
