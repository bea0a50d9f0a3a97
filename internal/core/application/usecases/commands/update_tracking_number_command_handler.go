package commands

import (
	"context"
)

// UpdateTrackingNumberCommandHandler records a tracking number on a completed
// fulfillment. The order status is left untouched; cancelled orders are
// rejected.
type UpdateTrackingNumberCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateTrackingNumberCommandHandler creates a handler for tracking number
// updates.
func NewUpdateTrackingNumberCommandHandler(uowFactory OrderUoWFactory) UpdateTrackingNumberCommandHandler {
	return UpdateTrackingNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking number command.
func (h UpdateTrackingNumberCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingNumberCommand) error {
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

	if err = aggregate.UpdateTrackingNumber(cmd.FulfillmentID(), cmd.TrackingNumber()); err != nil {
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
