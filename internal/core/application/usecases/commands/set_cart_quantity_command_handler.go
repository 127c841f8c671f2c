package commands

import (
	"context"
)

// SetCartQuantityCommandHandler handles setting absolute cart quantities.
type SetCartQuantityCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetCartQuantityCommandHandler creates a handler for quantity changes.
func NewSetCartQuantityCommandHandler(uowFactory UoWFactory) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change through the usual fact cycle.
func (h *SetCartQuantityCommandHandler) Handle(ctx context.Context, cmd SetCartQuantityCommand) error {
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

	fact, err := book.SetQuantity(cmd.OrderID(), cmd.ItemID(), cmd.Quantity())
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
