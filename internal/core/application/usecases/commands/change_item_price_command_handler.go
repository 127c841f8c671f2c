package commands

import (
	"context"
)

// ChangeItemPriceCommandHandler handles item price changes.
type ChangeItemPriceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeItemPriceCommandHandler creates a handler for price change operations.
func NewChangeItemPriceCommandHandler(uowFactory CatalogUoWFactory) ChangeItemPriceCommandHandler {
	return ChangeItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price change through the usual fact cycle.
func (h *ChangeItemPriceCommandHandler) Handle(ctx context.Context, cmd ChangeItemPriceCommand) error {
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

	fact, err := cat.ChangePrice(cmd.ItemID(), cmd.NewPrice())
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
