package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateFulfillmentLineQuantitiesCommandIsNotConstructed = errors.New(
	"UpdateFulfillmentLineQuantitiesCommand must be created via NewUpdateFulfillmentLineQuantitiesCommand constructor",
)

// UpdateFulfillmentLineQuantitiesCommand represents a request to replace the
// quantities of fulfillment lines within one fulfillment.
type UpdateFulfillmentLineQuantitiesCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	fulfillmentID kernel.UUID
	changes       []order.QuantityChange

	guard guard.ConstructorGuard
}

// NewUpdateFulfillmentLineQuantitiesCommand creates a command applying the
// quantity changes to the fulfillment.
func NewUpdateFulfillmentLineQuantitiesCommand(
	orderID kernel.UUID,
	fulfillmentID kernel.UUID,
	changes []order.QuantityChange,
) (UpdateFulfillmentLineQuantitiesCommand, error) {
	quantitiesCommand := UpdateFulfillmentLineQuantitiesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quantitiesCommand.setOrderID(orderID),
		quantitiesCommand.setFulfillmentID(fulfillmentID),
		quantitiesCommand.setChanges(changes),
	); err != nil {
		return UpdateFulfillmentLineQuantitiesCommand{}, err
	}

	return quantitiesCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFulfillmentLineQuantitiesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFulfillmentLineQuantitiesCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateFulfillmentLineQuantitiesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentID returns the fulfillment whose lines are changed.
func (c UpdateFulfillmentLineQuantitiesCommand) FulfillmentID() kernel.UUID {
	return c.fulfillmentID
}

// Changes returns the requested quantity replacements.
func (c UpdateFulfillmentLineQuantitiesCommand) Changes() []order.QuantityChange {
	return append([]order.QuantityChange(nil), c.changes...)
}

func (c *UpdateFulfillmentLineQuantitiesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateFulfillmentLineQuantitiesCommand) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}

	c.fulfillmentID = fulfillmentID
	return nil
}

func (c *UpdateFulfillmentLineQuantitiesCommand) setChanges(changes []order.QuantityChange) error {
	if len(changes) == 0 {
		return errs.NewValueIsRequiredError("changes")
	}

	for _, change := range changes {
		if err := change.FulfillmentLineID.Validate(); err != nil {
			return err
		}
		if change.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.changes = append([]order.QuantityChange(nil), changes...)
	return nil
}
