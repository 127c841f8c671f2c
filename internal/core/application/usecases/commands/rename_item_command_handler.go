package commands

import (
	"context"
)

// RenameItemCommandHandler handles catalog item renames.
type RenameItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRenameItemCommandHandler creates a handler for item rename operations.
func NewRenameItemCommandHandler(uowFactory CatalogUoWFactory) RenameItemCommandHandler {
	return RenameItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename command through the usual fact cycle.
func (h *RenameItemCommandHandler) Handle(ctx context.Context, cmd RenameItemCommand) error {
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

	fact, err := cat.RenameItem(cmd.ItemID(), cmd.NewName())
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
