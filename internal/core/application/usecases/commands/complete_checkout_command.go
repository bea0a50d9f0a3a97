package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCompleteCheckoutCommandIsNotConstructed = errors.New(
	"CompleteCheckoutCommand must be created via NewCompleteCheckoutCommand constructor",
)

// CompleteCheckoutCommand represents the final checkout submission: capture
// the payment, convert the checkout into an order and delete the checkout.
// The save flags carry the customer's checkbox choices from the final form.
type CompleteCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID                 kernel.UUID
	orderID                    kernel.UUID
	saveCustomerAddresses      bool
	savePaymentMethodAsDefault bool

	guard guard.ConstructorGuard
}

// NewCompleteCheckoutCommand creates a command completing the checkout into
// the order identified by orderID.
func NewCompleteCheckoutCommand(
	checkoutID kernel.UUID,
	orderID kernel.UUID,
	saveCustomerAddresses bool,
	savePaymentMethodAsDefault bool,
) (CompleteCheckoutCommand, error) {
	completeCommand := CompleteCheckoutCommand{
		saveCustomerAddresses:      saveCustomerAddresses,
		savePaymentMethodAsDefault: savePaymentMethodAsDefault,
		guard:                      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setCheckoutID(checkoutID),
		completeCommand.setOrderID(orderID),
	); err != nil {
		return CompleteCheckoutCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCheckoutCommandIsNotConstructed)
}

// CheckoutID returns the checkout to complete.
func (c CompleteCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// OrderID returns the identifier the created order will carry.
func (c CompleteCheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SaveCustomerAddresses reports whether the checkout addresses should be
// saved to the customer's address book.
func (c CompleteCheckoutCommand) SaveCustomerAddresses() bool {
	return c.saveCustomerAddresses
}

// SavePaymentMethodAsDefault reports whether the payment method should become
// the customer's default.
func (c CompleteCheckoutCommand) SavePaymentMethodAsDefault() bool {
	return c.savePaymentMethodAsDefault
}

func (c *CompleteCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *CompleteCheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
