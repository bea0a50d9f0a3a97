package commands

import (
	"context"

	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// SetShippingMethodCommandHandler selects a shipping method for a checkout.
// The method must belong to a zone serving the shipping destination and its
// range must cover the checkout's shipment parameter; the MethodSelector
// domain service performs that matching. With the quote frozen the checkout
// total is final, so the payment intent is created or brought up to date here.
type SetShippingMethodCommandHandler struct {
	uowFactory CheckoutUoWFactory
	shipping   ports.ShippingRepository
	configs    ports.ConfigurationRepository
	payments   ports.PaymentGateway
	selector   services.MethodSelector
}

// NewSetShippingMethodCommandHandler creates a handler for shipping method
// selection.
func NewSetShippingMethodCommandHandler(
	uowFactory CheckoutUoWFactory,
	shipping ports.ShippingRepository,
	configs ports.ConfigurationRepository,
	payments ports.PaymentGateway,
) SetShippingMethodCommandHandler {
	return SetShippingMethodCommandHandler{
		uowFactory: uowFactory,
		shipping:   shipping,
		configs:    configs,
		payments:   payments,
		selector:   services.NewMethodSelector(),
	}
}

// Handle processes the method selection command.
func (h SetShippingMethodCommandHandler) Handle(ctx context.Context, cmd SetShippingMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	zone, err := h.shipping.GetZoneContainingMethod(ctx, cmd.MethodID())
	if err != nil {
		return err
	}

	configuration, err := h.configs.GetActive(ctx)
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

	snapshot, err := h.selector.SelectForCheckout(zone, aggregate, cmd.MethodID())
	if err != nil {
		return err
	}

	if err = aggregate.SetShippingMethod(snapshot); err != nil {
		return err
	}

	if aggregate.HasPayment() {
		err = h.payments.UpdateIntent(ctx, aggregate.PaymentID(), aggregate.Total())
	} else {
		var paymentID string
		paymentID, err = h.payments.RequestIntent(
			ctx, aggregate.Total(), configuration.Currency(), aggregate.ID().String())
		if err == nil {
			err = aggregate.AttachPayment(paymentID)
		}
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
