package commands

import (
	"context"

	"shop/internal/core/domain/model/catalog"
)

// NotifyAbandonedCartCommandHandler handles firing the abandoned cart
// reminder. The fact is recorded in the log for observability; the order's
// state does not change.
type NotifyAbandonedCartCommandHandler struct {
	uowFactory OrderBookUoWFactory
}

// NewNotifyAbandonedCartCommandHandler creates a handler for reminder operations.
func NewNotifyAbandonedCartCommandHandler(
	uowFactory OrderBookUoWFactory,
) NotifyAbandonedCartCommandHandler {
	return NotifyAbandonedCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reminder command. No snapshot changes; only the fact
// is tracked for the log.
func (h *NotifyAbandonedCartCommandHandler) Handle(
	ctx context.Context,
	cmd NotifyAbandonedCartCommand,
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

	book, err := restoreOrderBook(ctx, uow.OrderRepository(), catalog.NewCatalog())
	if err != nil {
		return err
	}

	fact, err := book.NotifyAbandonedCart(cmd.OrderID())
	if err != nil {
		return err
	}
	if err = book.Apply(fact); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
