package commands

import (
	"context"
)

// UndoFulfillOrderCommandHandler reverses a Fulfilled order back to the
// status saved when it was fulfilled.
type UndoFulfillOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUndoFulfillOrderCommandHandler creates a handler for undoing order
// fulfillment.
func NewUndoFulfillOrderCommandHandler(uowFactory OrderUoWFactory) UndoFulfillOrderCommandHandler {
	return UndoFulfillOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the undo command.
func (h UndoFulfillOrderCommandHandler) Handle(ctx context.Context, cmd UndoFulfillOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UndoFulfill(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
