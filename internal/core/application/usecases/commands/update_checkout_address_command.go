package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCheckoutAddressCommandIsNotConstructed = errors.New(
	"UpdateCheckoutAddressCommand must be created via NewUpdateCheckoutAddressCommand constructor",
)

// UpdateCheckoutAddressCommand represents a partial update of a checkout's
// billing or shipping address. The patch distinguishes omitted fields from
// explicitly cleared ones: omitted fields keep their current value, null
// fields are cleared where the address allows it.
type UpdateCheckoutAddressCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	kind       AddressKind
	patch      kernel.AddressPatch

	guard guard.ConstructorGuard
}

// NewUpdateCheckoutAddressCommand creates a command applying the patch to the
// checkout's address of the given kind.
func NewUpdateCheckoutAddressCommand(
	checkoutID kernel.UUID,
	kind AddressKind,
	patch kernel.AddressPatch,
) (UpdateCheckoutAddressCommand, error) {
	addressCommand := UpdateCheckoutAddressCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setCheckoutID(checkoutID),
		addressCommand.setKind(kind),
	); err != nil {
		return UpdateCheckoutAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCheckoutAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutAddressCommandIsNotConstructed)
}

// CheckoutID returns the target checkout identifier.
func (c UpdateCheckoutAddressCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// Kind returns which of the checkout's addresses is being patched.
func (c UpdateCheckoutAddressCommand) Kind() AddressKind {
	return c.kind
}

// Patch returns the partial address update.
func (c UpdateCheckoutAddressCommand) Patch() kernel.AddressPatch {
	return c.patch
}

func (c *UpdateCheckoutAddressCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *UpdateCheckoutAddressCommand) setKind(kind AddressKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
