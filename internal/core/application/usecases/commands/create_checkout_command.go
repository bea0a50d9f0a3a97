package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateCheckoutCommandIsNotConstructed = errors.New(
		"CreateCheckoutCommand must be created via NewCreateCheckoutCommand constructor",
	)
)

// CheckoutLineInput is one requested line of a new checkout: the product
// variant and the quantity the customer wants.
type CheckoutLineInput struct {
	VariantID kernel.UUID
	Quantity  int
}

// CreateCheckoutCommand represents a request to open a checkout for a
// customer. Encapsulates the customer identity, contact email, client ip and
// the requested lines.
//
// Example:
//
//	cmd, err := NewCreateCheckoutCommand(kernel.NewUUID(), customerID, "jo@example.com", "203.0.113.7", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCreateCheckoutCommandHandler(uowFactory, users, variants, configs, payments)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create checkout: %w", err)
//	}
type CreateCheckoutCommand struct { //nolint:recvcheck //using for validation
	checkoutID kernel.UUID
	customerID kernel.UUID
	email      string
	ipAddress  string
	lines      []CheckoutLineInput

	guard guard.ConstructorGuard
}

// NewCreateCheckoutCommand creates a command to open a new checkout.
// Validates ids, requires a non-empty email and at least one line with a
// positive quantity.
func NewCreateCheckoutCommand(
	checkoutID kernel.UUID,
	customerID kernel.UUID,
	email string,
	ipAddress string,
	lines []CheckoutLineInput,
) (CreateCheckoutCommand, error) {
	checkoutCommand := CreateCheckoutCommand{
		ipAddress: ipAddress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCheckoutID(checkoutID),
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setEmail(email),
		checkoutCommand.setLines(lines),
	); err != nil {
		return CreateCheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCheckoutCommandIsNotConstructed if validation fails.
func (c CreateCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckoutCommandIsNotConstructed)
}

// CheckoutID returns the identifier for the new checkout.
func (c CreateCheckoutCommand) CheckoutID() kernel.UUID {
	return c.checkoutID
}

// CustomerID returns the customer opening the checkout.
func (c CreateCheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Email returns the customer contact email.
func (c CreateCheckoutCommand) Email() string {
	return c.email
}

// IPAddress returns the client ip the request originated from.
func (c CreateCheckoutCommand) IPAddress() string {
	return c.ipAddress
}

// Lines returns the requested checkout lines.
func (c CreateCheckoutCommand) Lines() []CheckoutLineInput {
	return append([]CheckoutLineInput(nil), c.lines...)
}

func (c *CreateCheckoutCommand) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}

	c.checkoutID = checkoutID
	return nil
}

func (c *CreateCheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCheckoutCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateCheckoutCommand) setLines(lines []CheckoutLineInput) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.VariantID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = append([]CheckoutLineInput(nil), lines...)
	return nil
}
