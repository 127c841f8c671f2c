package commands

import (
	"context"
)

// ChangeItemDescriptionCommandHandler handles item description changes.
type ChangeItemDescriptionCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewChangeItemDescriptionCommandHandler creates a handler for description changes.
func NewChangeItemDescriptionCommandHandler(
	uowFactory CatalogUoWFactory,
) ChangeItemDescriptionCommandHandler {
	return ChangeItemDescriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the description change through the usual fact cycle.
func (h *ChangeItemDescriptionCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeItemDescriptionCommand,
) error {
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

	fact, err := cat.ChangeDescription(cmd.ItemID(), cmd.NewDescription())
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
