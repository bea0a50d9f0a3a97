package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUseSingleAddressCommandIsNotConstructed = errors.New(
	"UseSingleAddressCommand must be created via NewUseSingleAddressCommand constructor",
)

// UseSingleAddressCommand toggles whether a checkout's billing address
// doubles as its shipping address.
type UseSingleAddressCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	enabled    bool

	guard guard.ConstructorGuard
}

// NewUseSingleAddressCommand creates a command toggling the single-address flag.
func NewUseSingleAddressCommand(checkoutID kernel.UUID, enabled bool) (UseSingleAddressCommand, error) {
	flagCommand := UseSingleAddressCommand{
		enabled: enabled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := flagCommand.setCheckoutID(checkoutID); err != nil {
		return UseSingleAddressCommand{}, err
	}

	return flagCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UseSingleAddressCommand) Validate() error {
	return c.guard.Validate(ErrUseSingleAddressCommandIsNotConstructed)
}

// CheckoutID returns the target checkout identifier.
func (c UseSingleAddressCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// Enabled returns the new flag value.
func (c UseSingleAddressCommand) Enabled() bool {
	return c.enabled
}

func (c *UseSingleAddressCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}
