package commands

import (
	"context"
)

// UseSingleAddressCommandHandler toggles the single-address flag on a
// checkout. Enabling it while a billing address exists mirrors that address
// to the shipping side.
type UseSingleAddressCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewUseSingleAddressCommandHandler creates a handler for the single-address
// toggle.
func NewUseSingleAddressCommandHandler(uowFactory CheckoutUoWFactory) UseSingleAddressCommandHandler {
	return UseSingleAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the toggle command.
func (h UseSingleAddressCommandHandler) Handle(ctx context.Context, cmd UseSingleAddressCommand) error {
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

	checkoutRepo := uow.CheckoutRepository()
	aggregate, err := checkoutRepo.Get(ctx, cmd.CheckoutID())
	if err != nil {
		return err
	}

	if err = aggregate.UseSingleAddress(cmd.Enabled()); err != nil {
		return err
	}

	if err = checkoutRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
