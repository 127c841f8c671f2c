package commands

import (
	"context"

	"shop/internal/core/domain/model/catalog"
)

// AssignDeliverySlotCommandHandler handles delivery window assignment.
type AssignDeliverySlotCommandHandler struct {
	uowFactory OrderBookUoWFactory
}

// NewAssignDeliverySlotCommandHandler creates a handler for slot assignment operations.
func NewAssignDeliverySlotCommandHandler(uowFactory OrderBookUoWFactory) AssignDeliverySlotCommandHandler {
	return AssignDeliverySlotCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the slot assignment through the usual fact cycle.
func (h *AssignDeliverySlotCommandHandler) Handle(ctx context.Context, cmd AssignDeliverySlotCommand) error {
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

	fact, err := book.AssignDeliverySlot(cmd.OrderID(), cmd.Slot())
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
