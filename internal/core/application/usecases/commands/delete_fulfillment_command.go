package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteFulfillmentCommandIsNotConstructed = errors.New(
	"DeleteFulfillmentCommand must be created via NewDeleteFulfillmentCommand constructor",
)

// DeleteFulfillmentCommand represents a request to delete a whole fulfillment
// and release every quantity it held.
type DeleteFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	fulfillmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFulfillmentCommand creates a command deleting the fulfillment.
func NewDeleteFulfillmentCommand(orderID, fulfillmentID kernel.UUID) (DeleteFulfillmentCommand, error) {
	deleteCommand := DeleteFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOrderID(orderID),
		deleteCommand.setFulfillmentID(fulfillmentID),
	); err != nil {
		return DeleteFulfillmentCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFulfillmentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c DeleteFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment to delete.
func (c DeleteFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

func (c *DeleteFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}
