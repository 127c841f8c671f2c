package commands

import (
	"context"

	"shop/internal/core/domain/model/catalog"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderBookUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
func NewChangeOrderStatusCommandHandler(uowFactory OrderBookUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change through the usual fact cycle.
// Status transitions never consult the catalog, so the book is restored over
// an empty item existence query.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	fact, err := book.ChangeStatus(cmd.OrderID(), cmd.NewStatus())
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
