package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrDeleteFulfillmentLinesCommandIsNotConstructed = errors.New(
	"DeleteFulfillmentLinesCommand must be created via NewDeleteFulfillmentLinesCommand constructor",
)

// DeleteFulfillmentLinesCommand represents a request to remove fulfillment
// lines from a fulfillment, releasing their quantities back to the order lines.
type DeleteFulfillmentLinesCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	fulfillmentID      kernel.UUID
	fulfillmentLineIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFulfillmentLinesCommand creates a command removing the given
// fulfillment lines.
func NewDeleteFulfillmentLinesCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	fulfillmentLineIDs []kernel.UUID,
) (DeleteFulfillmentLinesCommand, error) {
	deleteCommand := DeleteFulfillmentLinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOrderID(orderID),
		deleteCommand.setFulfillmentID(fulfillmentID),
		deleteCommand.setFulfillmentLineIDs(fulfillmentLineIDs),
	); err != nil {
		return DeleteFulfillmentLinesCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFulfillmentLinesCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFulfillmentLinesCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c DeleteFulfillmentLinesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment the lines are removed from.
func (c DeleteFulfillmentLinesCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// FulfillmentLineIDs returns the lines to remove.
func (c DeleteFulfillmentLinesCommand) FulfillmentLineIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.fulfillmentLineIDs...)
}

func (c *DeleteFulfillmentLinesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteFulfillmentLinesCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *DeleteFulfillmentLinesCommand) setFulfillmentLineIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("fulfillmentLineIds")
	}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.fulfillmentLineIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
