package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCancelCheckoutCommandIsNotConstructed = errors.New(
	"CancelCheckoutCommand must be created via NewCancelCheckoutCommand constructor",
)

// CancelCheckoutCommand represents a request to discard a checkout.
type CancelCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelCheckoutCommand creates a command discarding the given checkout.
func NewCancelCheckoutCommand(checkoutID kernel.UUID) (CancelCheckoutCommand, error) {
	cancelCommand := CancelCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setCheckoutID(checkoutID); err != nil {
		return CancelCheckoutCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCancelCheckoutCommandIsNotConstructed)
}

// CheckoutID returns the checkout to discard.
func (c CancelCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

func (c *CancelCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
