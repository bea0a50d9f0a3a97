package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrFulfillOrderCommandIsNotConstructed = errors.New(
	"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
)

// FulfillOrderCommand represents a request to mark an order fulfilled.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command fulfilling the given order.
func NewFulfillOrderCommand(orderID kernel.UUID) (FulfillOrderCommand, error) {
	fulfillCommand := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setOrderID(orderID); err != nil {
		return FulfillOrderCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the order to fulfill.
func (c FulfillOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FulfillOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
