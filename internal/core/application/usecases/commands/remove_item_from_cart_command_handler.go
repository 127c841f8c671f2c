package commands

import (
	"context"
)

// RemoveItemFromCartCommandHandler handles removing items from order carts.
type RemoveItemFromCartCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveItemFromCartCommandHandler creates a handler for cart removals.
func NewRemoveItemFromCartCommandHandler(uowFactory UoWFactory) RemoveItemFromCartCommandHandler {
	return RemoveItemFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal through the usual fact cycle.
func (h *RemoveItemFromCartCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveItemFromCartCommand,
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

	orderRepo := uow.OrderRepository()
	cat, err := restoreCatalog(ctx, uow.ItemRepository())
	if err != nil {
		return err
	}
	book, err := restoreOrderBook(ctx, orderRepo, cat)
	if err != nil {
		return err
	}

	fact, err := book.RemoveItem(cmd.OrderID(), cmd.ItemID())
	if err != nil {
		return err
	}
	if err = book.Apply(fact); err != nil {
		return err
	}

	order, err := book.Order(cmd.OrderID())
	if err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
