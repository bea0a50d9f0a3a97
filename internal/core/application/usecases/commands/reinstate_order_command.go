package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrReinstateOrderCommandIsNotConstructed = errors.New(
	"ReinstateOrderCommand must be created via NewReinstateOrderCommand constructor",
)

// ReinstateOrderCommand represents a request to restore a cancelled order to
// the status it held before cancellation.
type ReinstateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReinstateOrderCommand creates a command reinstating the given order.
func NewReinstateOrderCommand(orderID kernel.UUID) (ReinstateOrderCommand, error) {
	reinstateCommand := ReinstateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reinstateCommand.setOrderID(orderID); err != nil {
		return ReinstateOrderCommand{}, err
	}

	return reinstateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReinstateOrderCommand) Validate() error {
	return c.guard.Validate(ErrReinstateOrderCommandIsNotConstructed)
}

// OrderID returns the order to reinstate.
func (c ReinstateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReinstateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
