package commands

import (
	"context"
)

// CreateFulfillmentCommandHandler opens a fulfillment on a processable order.
// The order aggregate validates the whole entry batch against the line
// ledgers before assigning anything; creating the first fulfillment moves a
// Confirmed order to Processing.
type CreateFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateFulfillmentCommandHandler creates a handler for fulfillment creation.
func NewCreateFulfillmentCommandHandler(uowFactory OrderUoWFactory) CreateFulfillmentCommandHandler {
	return CreateFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment creation command.
func (h CreateFulfillmentCommandHandler) Handle(ctx context.Context, cmd CreateFulfillmentCommand) error {
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

	if _, err = aggregate.CreateFulfillment(cmd.FulfillmentID(), cmd.Entries()); err != nil {
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
