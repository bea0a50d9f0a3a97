package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// CancelCheckoutCommandHandler discards a checkout and voids its payment
// intent if one was requested. A failed void is tolerated: an unreferenced
// intent expires on the provider side on its own.
type CancelCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	payments   ports.PaymentGateway
}

// NewCancelCheckoutCommandHandler creates a handler for checkout cancellation.
func NewCancelCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	payments ports.PaymentGateway,
) CancelCheckoutCommandHandler {
	return CancelCheckoutCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the cancellation command.
func (h CancelCheckoutCommandHandler) Handle(ctx context.Context, cmd CancelCheckoutCommand) error {
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

	if aggregate.HasPayment() {
		_ = h.payments.Cancel(ctx, aggregate.PaymentID())
	}

	if err = checkoutRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
