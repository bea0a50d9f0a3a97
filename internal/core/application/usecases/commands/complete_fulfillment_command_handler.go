package commands

import (
	"context"
)

// CompleteFulfillmentCommandHandler seals a fulfillment. Completing the first
// fulfillment of a Processing order moves it to PartiallyFulfilled.
type CompleteFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteFulfillmentCommandHandler creates a handler for fulfillment
// completion.
func NewCompleteFulfillmentCommandHandler(uowFactory OrderUoWFactory) CompleteFulfillmentCommandHandler {
	return CompleteFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteFulfillmentCommandHandler) Handle(ctx context.Context, cmd CompleteFulfillmentCommand) error {
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

	if err = aggregate.CompleteFulfillment(cmd.FulfillmentID(), cmd.TrackingNumber()); err != nil {
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
