package commands

import (
	"context"
)

// UpdateFulfillmentLineQuantitiesCommandHandler replaces fulfillment line
// quantities. The aggregate resolves every change against one consistent
// snapshot of the ledgers; any violation fails the whole batch with the
// ledgers untouched.
type UpdateFulfillmentLineQuantitiesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateFulfillmentLineQuantitiesCommandHandler creates a handler for
// fulfillment line quantity updates.
func NewUpdateFulfillmentLineQuantitiesCommandHandler(
	uowFactory OrderUoWFactory,
) UpdateFulfillmentLineQuantitiesCommandHandler {
	return UpdateFulfillmentLineQuantitiesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update command.
func (h UpdateFulfillmentLineQuantitiesCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateFulfillmentLineQuantitiesCommand,
) error {
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

	if err = aggregate.UpdateFulfillmentLineQuantities(cmd.FulfillmentID(), cmd.Changes()); err != nil {
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
