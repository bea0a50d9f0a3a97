package commands

import (
	"context"
)

// CreateCheckoutAddressCommandHandler attaches a new billing or shipping
// address to a checkout. Setting the shipping address clears any previously
// selected shipping method, since the quote may no longer apply.
type CreateCheckoutAddressCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateCheckoutAddressCommandHandler creates a handler for attaching
// checkout addresses.
func NewCreateCheckoutAddressCommandHandler(uowFactory CheckoutUoWFactory) CreateCheckoutAddressCommandHandler {
	return CreateCheckoutAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address attachment command.
func (h CreateCheckoutAddressCommandHandler) Handle(ctx context.Context, cmd CreateCheckoutAddressCommand) error {
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
		err = aggregate.SetBillingAddress(cmd.Address())
	case ShippingAddressKind:
		err = aggregate.SetShippingAddress(cmd.Address())
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
