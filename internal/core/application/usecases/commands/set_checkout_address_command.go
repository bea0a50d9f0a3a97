package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetCheckoutAddressCommandIsNotConstructed = errors.New(
	"SetCheckoutAddressCommand must be created via NewSetCheckoutAddressCommand constructor",
)

// SetCheckoutAddressCommand represents a request to use a saved address book
// entry as a checkout's billing or shipping address. The entry must belong to
// the checkout's own customer.
type SetCheckoutAddressCommand struct { //nolint:recvcheck //using for validation
	checkoutID        kernel.UUID
	kind              AddressKind
	customerAddressID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetCheckoutAddressCommand creates a command pointing the checkout's
// address of the given kind at a saved address book entry.
func NewSetCheckoutAddressCommand(
	checkoutID kernel.UUID,
	kind AddressKind,
	customerAddressID kernel.UUID,
) (SetCheckoutAddressCommand, error) {
	addressCommand := SetCheckoutAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setCheckoutID(checkoutID),
		addressCommand.setKind(kind),
		addressCommand.setCustomerAddressID(customerAddressID),
	); err != nil {
		return SetCheckoutAddressCommand{}, err
	}

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCheckoutAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetCheckoutAddressCommandIsNotConstructed)
}

// CheckoutID returns the target checkout identifier.
func (c SetCheckoutAddressCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// Kind returns which of the checkout's addresses is being set.
func (c SetCheckoutAddressCommand) Kind() AddressKind {
	return c.kind
}

// CustomerAddressID returns the saved address book entry to use.
func (c SetCheckoutAddressCommand) CustomerAddressID() kernel.UUID {
	return c.customerAddressID
}

func (c *SetCheckoutAddressCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *SetCheckoutAddressCommand) setKind(kind AddressKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *SetCheckoutAddressCommand) setCustomerAddressID(customerAddressID kernel.UUID) error {
	if err := customerAddressID.Validate(); err != nil {
		return err
	}

	c.customerAddressID = customerAddressID
	return nil
}
