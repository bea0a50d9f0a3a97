package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUndoFulfillOrderCommandIsNotConstructed = errors.New(
	"UndoFulfillOrderCommand must be created via NewUndoFulfillOrderCommand constructor",
)

// UndoFulfillOrderCommand represents a request to reverse an order's
// fulfilled status, restoring the status it held before.
type UndoFulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUndoFulfillOrderCommand creates a command undoing the order's fulfillment.
func NewUndoFulfillOrderCommand(orderID kernel.UUID) (UndoFulfillOrderCommand, error) {
	undoCommand := UndoFulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := undoCommand.setOrderID(orderID); err != nil {
		return UndoFulfillOrderCommand{}, err
	}

	return undoCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UndoFulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrUndoFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the order to revert.
func (c UndoFulfillOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UndoFulfillOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
