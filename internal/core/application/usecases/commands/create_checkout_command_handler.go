package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateCheckoutCommandHandler handles the business logic for opening a
// checkout. Verifies the customer account, snapshots variant prices and
// masses into the checkout lines, and requests a payment intent up front for
// digital-only checkouts whose total is already final.
type CreateCheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	users      ports.UserRepository
	variants   ports.VariantRepository
	configs    ports.ConfigurationRepository
	payments   ports.PaymentGateway
}

// NewCreateCheckoutCommandHandler creates a handler for checkout creation.
func NewCreateCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	users ports.UserRepository,
	variants ports.VariantRepository,
	configs ports.ConfigurationRepository,
	payments ports.PaymentGateway,
) CreateCheckoutCommandHandler {
	return CreateCheckoutCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		variants:   variants,
		configs:    configs,
		payments:   payments,
	}
}

// Handle processes the checkout creation command.
// Enforces the one-checkout-per-customer rule, rejects unpublished variants,
// and requires a configured mass unit when any line needs shipping.
func (h CreateCheckoutCommandHandler) Handle(ctx context.Context, cmd CreateCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.users.Exists(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("userId", cmd.CustomerID().String())
	}

	configuration, err := h.configs.GetActive(ctx)
	if err != nil {
		return err
	}

	variantIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		variantIDs = append(variantIDs, line.VariantID)
	}

	variants, err := h.variants.GetAll(ctx, variantIDs)
	if err != nil {
		return err
	}

	variantsByID := make(map[kernel.UUID]*product.Variant, len(variants))
	for _, variant := range variants {
		variantsByID[variant.ID()] = variant
	}

	lines := make([]*checkout.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		variant, ok := variantsByID[input.VariantID]
		if !ok {
			return errs.NewObjectNotFoundError("variantId", input.VariantID.String())
		}
		if !variant.IsPublished() {
			return errs.NewBusinessRuleViolationError(
				"CHECKOUT_VARIANT_NOT_PUBLISHED",
				"variant %s does not belong to a published product", variant.ID(),
			)
		}
		if variant.IsPhysical() && !configuration.HasMassUnit() {
			return errs.NewBusinessRuleViolationError(
				"CHECKOUT_MISSING_MASS_UNIT",
				"variant %s requires shipping but the store has no mass unit configured", variant.ID(),
			)
		}

		line, lineErr := checkout.NewLine(
			kernel.NewUUID(),
			variant.ID(),
			input.Quantity,
			variant.Price(),
			variant.MassGrams(),
			variant.IsPhysical(),
		)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	aggregate, err := checkout.NewCheckout(
		cmd.CheckoutID(),
		cmd.CustomerID(),
		cmd.Email(),
		cmd.IPAddress(),
		lines,
		time.Now().UTC(),
	)
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

	existing, err := checkoutRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewBusinessRuleViolationError(
			"CHECKOUT_ALREADY_EXISTS",
			"customer %s already has checkout %s", cmd.CustomerID(), existing.ID(),
		)
	}

	// Digital-only checkouts have their final total at creation time, so the
	// payment intent can be requested immediately. Shipped checkouts wait for
	// the shipping method selection.
	if !aggregate.ShippingRequired() {
		paymentID, payErr := h.payments.RequestIntent(
			ctx, aggregate.Total(), configuration.Currency(), aggregate.ID().String())
		if payErr != nil {
			return payErr
		}
		if err = aggregate.AttachPayment(paymentID); err != nil {
			return err
		}
	}

	if err = checkoutRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
