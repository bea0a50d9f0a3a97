package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateFulfillmentCommandIsNotConstructed = errors.New(
	"CreateFulfillmentCommand must be created via NewCreateFulfillmentCommand constructor",
)

// CreateFulfillmentCommand represents a request to open a new fulfillment on
// an order and assign the given order-line quantities to it.
type CreateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	fulfillmentID kernel.UUID
	entries       []order.FulfillmentEntry

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentCommand creates a command opening a fulfillment with
// the given entries. Entries must reference valid order line ids and carry
// positive quantities.
func NewCreateFulfillmentCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	entries []order.FulfillmentEntry,
) (CreateFulfillmentCommand, error) {
	fulfillmentCommand := CreateFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fulfillmentCommand.setOrderID(orderID),
		fulfillmentCommand.setFulfillmentID(fulfillmentID),
		fulfillmentCommand.setEntries(entries),
	); err != nil {
		return CreateFulfillmentCommand{}, err
	}

	return fulfillmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CreateFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the identifier the new fulfillment will carry.
func (c CreateFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Entries returns the requested order-line assignments.
func (c CreateFulfillmentCommand) Entries() []order.FulfillmentEntry {
	return append([]order.FulfillmentEntry(nil), c.entries...)
}

func (c *CreateFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *CreateFulfillmentCommand) setEntries(entries []order.FulfillmentEntry) error {
	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("entries")
	}

	for _, entry := range entries {
		if err := entry.OrderLineID.Validate(); err != nil {
			return err
		}
		if entry.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.entries = append([]order.FulfillmentEntry(nil), entries...)
	return nil
}
