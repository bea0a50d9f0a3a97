package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateTrackingNumberCommandIsNotConstructed = errors.New(
	"UpdateTrackingNumberCommand must be created via NewUpdateTrackingNumberCommand constructor",
)

// UpdateTrackingNumberCommand represents a request to record a tracking
// number on a completed fulfillment.
type UpdateTrackingNumberCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	fulfillmentID  kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewUpdateTrackingNumberCommand creates a command recording the tracking
// number. The number must be non-empty.
func NewUpdateTrackingNumberCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	trackingNumber string,
) (UpdateTrackingNumberCommand, error) {
	trackingCommand := UpdateTrackingNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackingCommand.setOrderID(orderID),
		trackingCommand.setFulfillmentID(fulfillmentID),
		trackingCommand.setTrackingNumber(trackingNumber),
	); err != nil {
		return UpdateTrackingNumberCommand{}, err
	}

	return trackingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackingNumberCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingNumberCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateTrackingNumberCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment the number belongs to.
func (c UpdateTrackingNumberCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// TrackingNumber returns the carrier tracking number.
func (c UpdateTrackingNumberCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *UpdateTrackingNumberCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTrackingNumberCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *UpdateTrackingNumberCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = trackingNumber
	return nil
}
