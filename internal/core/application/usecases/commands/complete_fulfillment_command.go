package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCompleteFulfillmentCommandIsNotConstructed = errors.New(
	"CompleteFulfillmentCommand must be created via NewCompleteFulfillmentCommand constructor",
)

// CompleteFulfillmentCommand represents a request to seal a fulfillment,
// optionally recording its tracking number.
type CompleteFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	fulfillmentID  kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewCompleteFulfillmentCommand creates a command completing the fulfillment.
// The tracking number may be empty and recorded later.
func NewCompleteFulfillmentCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	trackingNumber string,
) (CompleteFulfillmentCommand, error) {
	completeCommand := CompleteFulfillmentCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setFulfillmentID(fulfillmentID),
	); err != nil {
		return CompleteFulfillmentCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteFulfillmentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CompleteFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment to complete.
func (c CompleteFulfillmentCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// TrackingNumber returns the carrier tracking number, possibly empty.
func (c CompleteFulfillmentCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *CompleteFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteFulfillmentCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}
