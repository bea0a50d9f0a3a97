package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddFulfillmentLinesCommandIsNotConstructed = errors.New(
	"AddFulfillmentLinesCommand must be created via NewAddFulfillmentLinesCommand constructor",
)

// AddFulfillmentLinesCommand represents a request to assign additional
// order-line quantities to an existing fulfillment.
type AddFulfillmentLinesCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	fulfillmentID kernel.UUID
	entries       []order.FulfillmentEntry

	guard guard.ConstructorGuard
}

// NewAddFulfillmentLinesCommand creates a command adding the entries to the
// fulfillment.
func NewAddFulfillmentLinesCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	entries []order.FulfillmentEntry,
) (AddFulfillmentLinesCommand, error) {
	linesCommand := AddFulfillmentLinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		linesCommand.setOrderID(orderID),
		linesCommand.setFulfillmentID(fulfillmentID),
		linesCommand.setEntries(entries),
	); err != nil {
		return AddFulfillmentLinesCommand{}, err
	}

	return linesCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFulfillmentLinesCommand) Validate() error {
	return c.guard.Validate(ErrAddFulfillmentLinesCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AddFulfillmentLinesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment receiving the entries.
func (c AddFulfillmentLinesCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Entries returns the requested order-line assignments.
func (c AddFulfillmentLinesCommand) Entries() []order.FulfillmentEntry {
	return append([]order.FulfillmentEntry(nil), c.entries...)
}

func (c *AddFulfillmentLinesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddFulfillmentLinesCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *AddFulfillmentLinesCommand) setEntries(entries []order.FulfillmentEntry) error {
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
