package commands

import (
	"context"
)

// DeleteItemCommandHandler handles catalog item deletion together with its
// cascade: the deleted item is stripped from every order cart referencing it.
// Both aggregates change inside one transaction, so the catalog and the order
// book can never disagree about the item's existence.
type DeleteItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item deletion operations.
// Requires a UoWFactory because the cascade spans both aggregates.
func NewDeleteItemCommandHandler(uowFactory UoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item deletion command. The Catalog produces the
// ItemDeleted fact; the OrderBook reacts by producing one CartItemRemoved
// fact per affected cart. All facts are applied, the snapshots updated and
// the facts tracked for the log, in one transaction.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
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
	orderRepo := uow.OrderRepository()

	cat, err := restoreCatalog(ctx, itemRepo)
	if err != nil {
		return err
	}
	book, err := restoreOrderBook(ctx, orderRepo, cat)
	if err != nil {
		return err
	}

	deleted, err := cat.DeleteItem(cmd.ItemID())
	if err != nil {
		return err
	}
	if err = cat.Apply(deleted); err != nil {
		return err
	}
	if err = itemRepo.Remove(ctx, cmd.ItemID()); err != nil {
		return err
	}
	uow.TrackFact(deleted)

	for _, removed := range book.RemoveDeletedItem(cmd.ItemID()) {
		if err = book.Apply(removed); err != nil {
			return err
		}

		order, getErr := book.Order(removed.OrderID)
		if getErr != nil {
			return getErr
		}
		if err = orderRepo.Update(ctx, order); err != nil {
			return err
		}
		uow.TrackFact(removed)
	}

	return uow.Commit(ctx)
}
