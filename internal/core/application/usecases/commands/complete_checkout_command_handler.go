package commands

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CompleteCheckoutCommandHandler turns a checkout into an order. The whole
// sequence runs in one transaction: the order is created in Created status
// with the checkout's lines, addresses, shipping snapshot and payment
// reference copied over, the checkout is deleted, the payment intent is
// captured and the confirmation mail goes out. Any failure rolls the
// conversion back.
type CompleteCheckoutCommandHandler struct {
	uowFactory UoWFactory
	payments   ports.PaymentGateway
	mail       ports.MailSender
}

// NewCompleteCheckoutCommandHandler creates a handler for checkout completion.
func NewCompleteCheckoutCommandHandler(
	uowFactory UoWFactory,
	payments ports.PaymentGateway,
	mail ports.MailSender,
) CompleteCheckoutCommandHandler {
	return CompleteCheckoutCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		mail:       mail,
	}
}

// Handle processes the completion command.
// The checkout must be ready for completion: payment intent present, billing
// address set and, when shipping is required, a shipping address and method
// selected. The error names the first missing piece.
func (h CompleteCheckoutCommandHandler) Handle(ctx context.Context, cmd CompleteCheckoutCommand) error {
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
	orderRepo := uow.OrderRepository()

	aggregate, err := checkoutRepo.Get(ctx, cmd.CheckoutID())
	if err != nil {
		return err
	}

	aggregate.MarkSaveCustomerAddresses(cmd.SaveCustomerAddresses())
	aggregate.MarkSavePaymentMethodAsDefault(cmd.SavePaymentMethodAsDefault())

	if err = aggregate.EnsureReadyForCompletion(); err != nil {
		return err
	}

	newOrder, err := buildOrder(cmd.OrderID(), aggregate)
	if err != nil {
		return err
	}

	if err = h.payments.Capture(ctx, aggregate.PaymentID()); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = checkoutRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = h.mail.SendOrderCreated(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildOrder copies the checkout data into a new order aggregate. Each
// checkout line becomes an order line with a fresh identity and an empty
// fulfillment ledger.
func buildOrder(orderID kernel.UUID, aggregate *checkout.Checkout) (*order.Order, error) {
	billingAddress := aggregate.BillingAddress()
	if billingAddress == nil {
		return nil, errs.NewValueIsRequiredError("billingAddress")
	}

	lines := make([]*order.Line, 0, len(aggregate.Lines()))
	for _, checkoutLine := range aggregate.Lines() {
		line, err := order.NewLine(
			kernel.NewUUID(),
			orderID,
			checkoutLine.VariantID(),
			checkoutLine.Quantity(),
			checkoutLine.UnitPrice(),
			checkoutLine.IsPhysical(),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(
		orderID,
		aggregate.CustomerID(),
		aggregate.Email(),
		*billingAddress,
		aggregate.ShippingAddress(),
		aggregate.ShippingMethod(),
		aggregate.PaymentID(),
		lines,
	)
}
