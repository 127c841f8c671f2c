package commands

import (
	"context"

	"shop/internal/core/domain/model/catalog"
)

// DeleteOrderCommandHandler handles order deletion.
type DeleteOrderCommandHandler struct {
	uowFactory OrderBookUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderBookUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command through the usual fact cycle.
// Deletion never consults the catalog, so the book is restored over an empty
// item existence query.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	book, err := restoreOrderBook(ctx, orderRepo, catalog.NewCatalog())
	if err != nil {
		return err
	}

	fact, err := book.DeleteOrder(cmd.OrderID())
	if err != nil {
		return err
	}
	if err = book.Apply(fact); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
