package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// SetCheckoutAddressCommandHandler copies a saved address book entry into a
// checkout. The entry is resolved outside the transaction since the address
// book is read-only for this service.
type SetCheckoutAddressCommandHandler struct {
	uowFactory        CheckoutUoWFactory
	customerAddresses ports.CustomerAddressRepository
}

// NewSetCheckoutAddressCommandHandler creates a handler for using saved
// addresses on checkouts.
func NewSetCheckoutAddressCommandHandler(
	uowFactory CheckoutUoWFactory,
	customerAddresses ports.CustomerAddressRepository,
) SetCheckoutAddressCommandHandler {
	return SetCheckoutAddressCommandHandler{
		uowFactory:        uowFactory,
		customerAddresses: customerAddresses,
	}
}

// Handle processes the saved-address command.
// The referenced entry must exist and belong to the checkout's customer.
func (h SetCheckoutAddressCommandHandler) Handle(ctx context.Context, cmd SetCheckoutAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	saved, err := h.customerAddresses.Get(ctx, cmd.CustomerAddressID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if !saved.BelongsTo(aggregate.CustomerID()) {
		return errs.NewBusinessRuleViolationError(
			"ADDRESS_DOES_NOT_BELONG_TO_USER",
			"address %s does not belong to user %s", saved.ID(), aggregate.CustomerID(),
		)
	}

	switch cmd.Kind() {
	case BillingAddressKind:
		err = aggregate.SetBillingAddress(saved.Value())
	case ShippingAddressKind:
		err = aggregate.SetShippingAddress(saved.Value())
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
