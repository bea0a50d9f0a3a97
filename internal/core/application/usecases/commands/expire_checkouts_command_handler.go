package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

// ExpireCheckoutsCommandHandler discards abandoned checkouts. Each expired
// checkout's payment intent is voided on a best-effort basis before deletion,
// same as an explicit cancellation.
type ExpireCheckoutsCommandHandler struct {
	uowFactory CheckoutUoWFactory
	payments   ports.PaymentGateway
}

// NewExpireCheckoutsCommandHandler creates a handler for checkout expiration.
func NewExpireCheckoutsCommandHandler(
	uowFactory CheckoutUoWFactory,
	payments ports.PaymentGateway,
) ExpireCheckoutsCommandHandler {
	return ExpireCheckoutsCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the expiration command and returns how many checkouts
// were discarded.
func (h ExpireCheckoutsCommandHandler) Handle(ctx context.Context, cmd ExpireCheckoutsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	checkoutRepo := uow.CheckoutRepository()
	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	expired, err := checkoutRepo.GetAllCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range expired {
		if aggregate.HasPayment() {
			_ = h.payments.Cancel(ctx, aggregate.PaymentID())
		}
		if err = checkoutRepo.Delete(ctx, aggregate.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
