package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetShippingMethodCommandIsNotConstructed = errors.New(
	"SetShippingMethodCommand must be created via NewSetShippingMethodCommand constructor",
)

// SetShippingMethodCommand represents a request to select a shipping method
// for a checkout and freeze its quote.
type SetShippingMethodCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	methodID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetShippingMethodCommand creates a command selecting the given shipping
// method for the checkout.
func NewSetShippingMethodCommand(checkoutID, methodID kernel.UUID) (SetShippingMethodCommand, error) {
	methodCommand := SetShippingMethodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		methodCommand.setCheckoutID(checkoutID),
		methodCommand.setMethodID(methodID),
	); err != nil {
		return SetShippingMethodCommand{}, err
	}

	return methodCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrSetShippingMethodCommandIsNotConstructed)
}

// CheckoutID returns the target checkout identifier.
func (c SetShippingMethodCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// MethodID returns the selected shipping method identifier.
func (c SetShippingMethodCommand) MethodID() kernel.UUID {
	return c.methodID
}

func (c *SetShippingMethodCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *SetShippingMethodCommand) setMethodID(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}

	c.methodID = methodID
	return nil
}
