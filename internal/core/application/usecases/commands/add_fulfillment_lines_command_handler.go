package commands

import (
	"context"
)

// AddFulfillmentLinesCommandHandler assigns additional quantities to an
// existing fulfillment. The batch fails as a whole if any entry references a
// missing order line or exceeds a line's assignable quantity.
type AddFulfillmentLinesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddFulfillmentLinesCommandHandler creates a handler for adding
// fulfillment lines.
func NewAddFulfillmentLinesCommandHandler(uowFactory OrderUoWFactory) AddFulfillmentLinesCommandHandler {
	return AddFulfillmentLinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command.
func (h AddFulfillmentLinesCommandHandler) Handle(ctx context.Context, cmd AddFulfillmentLinesCommand) error {
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

	if err = aggregate.AddFulfillmentLines(cmd.FulfillmentID(), cmd.Entries()); err != nil {
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
