package commands

import (
	"context"
)

// DeleteFulfillmentCommandHandler deletes a fulfillment. The aggregate walks
// the fulfillment's lines child to parent: each line is removed and its order
// line's fulfilled quantity decremented, completed or not.
type DeleteFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteFulfillmentCommandHandler creates a handler for fulfillment deletion.
func NewDeleteFulfillmentCommandHandler(uowFactory OrderUoWFactory) DeleteFulfillmentCommandHandler {
	return DeleteFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteFulfillmentCommandHandler) Handle(ctx context.Context, cmd DeleteFulfillmentCommand) error {
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

	if err = aggregate.DeleteFulfillment(cmd.FulfillmentID()); err != nil {
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
