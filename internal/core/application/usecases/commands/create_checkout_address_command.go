package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateCheckoutAddressCommandIsNotConstructed = errors.New(
	"CreateCheckoutAddressCommand must be created via NewCreateCheckoutAddressCommand constructor",
)

// CreateCheckoutAddressCommand represents a request to attach a complete new
// address to a checkout, either as its billing or its shipping address.
type CreateCheckoutAddressCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	kind       AddressKind
	address    kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateCheckoutAddressCommand creates a command attaching the given
// address to the checkout. The address must already be a validated value.
func NewCreateCheckoutAddressCommand(
	checkoutID kernel.UUID,
	kind AddressKind,
	address kernel.Address,
) (CreateCheckoutAddressCommand, error) {
	addressCommand := CreateCheckoutAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setCheckoutID(checkoutID),
		addressCommand.setKind(kind),
		addressCommand.setAddress(address),
	); err != nil {
		return CreateCheckoutAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCheckoutAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckoutAddressCommandIsNotConstructed)
}

// CheckoutID returns the target checkout identifier.
func (c CreateCheckoutAddressCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// Kind returns which of the checkout's addresses is being set.
func (c CreateCheckoutAddressCommand) Kind() AddressKind {
	return c.kind
}

// Address returns the new address value.
func (c CreateCheckoutAddressCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateCheckoutAddressCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *CreateCheckoutAddressCommand) setKind(kind AddressKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateCheckoutAddressCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
