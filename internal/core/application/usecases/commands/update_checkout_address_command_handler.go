package commands

import (
	"context"
)

// UpdateCheckoutAddressCommandHandler applies a partial update to an existing
// checkout address. A checkout without the targeted address is rejected.
type UpdateCheckoutAddressCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewUpdateCheckoutAddressCommandHandler creates a handler for checkout
// address updates.
func NewUpdateCheckoutAddressCommandHandler(uowFactory CheckoutUoWFactory) UpdateCheckoutAddressCommandHandler {
	return UpdateCheckoutAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address patch command.
func (h UpdateCheckoutAddressCommandHandler) Handle(ctx context.Context, cmd UpdateCheckoutAddressCommand) error {
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

	switch cmd.Kind() {
	case BillingAddressKind:
		err = aggregate.UpdateBillingAddress(cmd.Patch())
	case ShippingAddressKind:
		err = aggregate.UpdateShippingAddress(cmd.Patch())
	}
	if err != nil {
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
