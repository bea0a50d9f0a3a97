package commands

import (
	"context"
)

// FulfillOrderCommandHandler marks an order fulfilled. Every line requiring
// shipping must be fully fulfilled first. The prior status is saved so the
// transition can be undone.
type FulfillOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment.
func NewFulfillOrderCommandHandler(uowFactory OrderUoWFactory) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment command.
func (h FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) error {
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

	if err = aggregate.Fulfill(); err != nil {
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
