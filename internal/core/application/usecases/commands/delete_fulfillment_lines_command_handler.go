package commands

import (
	"context"
)

// DeleteFulfillmentLinesCommandHandler removes fulfillment lines and releases
// their quantities. Ids that do not resolve to a line of the fulfillment are
// skipped rather than failing the batch, so retried deletions stay idempotent.
type DeleteFulfillmentLinesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteFulfillmentLinesCommandHandler creates a handler for fulfillment
// line deletion.
func NewDeleteFulfillmentLinesCommandHandler(uowFactory OrderUoWFactory) DeleteFulfillmentLinesCommandHandler {
	return DeleteFulfillmentLinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteFulfillmentLinesCommandHandler) Handle(ctx context.Context, cmd DeleteFulfillmentLinesCommand) error {
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

	if err = aggregate.DeleteFulfillmentLines(cmd.FulfillmentID(), cmd.FulfillmentLineIDs()); err != nil {
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
