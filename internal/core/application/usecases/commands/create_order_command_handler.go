package commands

import (
	"context"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Needs both aggregates: the catalog serves as the item existence query for
// the initial cart.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The OrderBook validates the
// cart against the catalog and produces an OrderCreated fact, which is
// applied, persisted as a snapshot and tracked for the fact log.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	fact, err := book.CreateOrder(cmd.OrderID(), cmd.UserID(), cmd.Cart())
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
	if err = orderRepo.Add(ctx, order); err != nil {
		return err
	}

	uow.TrackFact(fact)
	return uow.Commit(ctx)
}
