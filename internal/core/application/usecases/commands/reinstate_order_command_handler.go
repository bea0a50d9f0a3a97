package commands

import (
	"context"
)

// ReinstateOrderCommandHandler restores a cancelled order to its saved
// previous status.
type ReinstateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReinstateOrderCommandHandler creates a handler for order reinstatement.
func NewReinstateOrderCommandHandler(uowFactory OrderUoWFactory) ReinstateOrderCommandHandler {
	return ReinstateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reinstatement command.
func (h ReinstateOrderCommandHandler) Handle(ctx context.Context, cmd ReinstateOrderCommand) error {
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

	if err = aggregate.Reinstate(); err != nil {
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
