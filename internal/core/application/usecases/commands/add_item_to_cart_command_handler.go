package commands

import (
	"context"
)

// AddItemToCartCommandHandler handles adding items to order carts.
// Needs both aggregates: the catalog serves as the item existence query.
type AddItemToCartCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddItemToCartCommandHandler creates a handler for cart additions.
func NewAddItemToCartCommandHandler(uowFactory UoWFactory) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition through the usual fact cycle.
func (h *AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) error {
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

	fact, err := book.AddItem(cmd.OrderID(), cmd.ItemID())
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
