package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrFulfillmentIsNotConstructed indicates that a Fulfillment was not
	// created through NewFulfillment or RestoreFulfillment.
	ErrFulfillmentIsNotConstructed = errors.New(
		"Fulfillment must be created via NewFulfillment constructor",
	)

	// ErrFulfillmentLineIsNotConstructed indicates that a FulfillmentLine was
	// not created through newFulfillmentLine or RestoreFulfillmentLine.
	ErrFulfillmentLineIsNotConstructed = errors.New(
		"FulfillmentLine must be created via RestoreFulfillmentLine constructor",
	)
)

// Fulfillment is a shipment batch of one or more order lines. While open
// (completed == false) it accumulates fulfillment lines; completing it seals
// the batch. A tracking number can only be recorded on a completed
// fulfillment.
type Fulfillment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	completed      bool
	trackingNumber string
	lines          []*FulfillmentLine

	guard kernel.ConstructorGuard
}

// FulfillmentLine assigns a quantity of exactly one order line to a
// fulfillment. For a given (fulfillment, order line) pair there is at most
// one fulfillment line; repeated assignment grows its quantity instead of
// creating a duplicate.
type FulfillmentLine struct {
	id            kernel.UUID
	fulfillmentID kernel.UUID
	orderLineID   kernel.UUID
	quantity      int

	guard kernel.ConstructorGuard
}

// NewFulfillment creates an open, empty fulfillment for the given order.
func NewFulfillment(id kernel.UUID, orderID kernel.UUID) (*Fulfillment, error) {
	fulfillment := &Fulfillment{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		fulfillment.setID(id),
		fulfillment.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return fulfillment, nil
}

// RestoreFulfillment reconstructs a fulfillment from persistence.
func RestoreFulfillment(
	id kernel.UUID,
	orderID kernel.UUID,
	completed bool,
	trackingNumber string,
	lines []*FulfillmentLine,
) (*Fulfillment, error) {
	fulfillment, err := NewFulfillment(id, orderID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	fulfillment.completed = completed
	fulfillment.trackingNumber = trackingNumber
	fulfillment.lines = append([]*FulfillmentLine(nil), lines...)

	return fulfillment, nil
}

// Validate ensures the Fulfillment was created through a constructor.
func (f *Fulfillment) Validate() error {
	if f == nil {
		return ErrFulfillmentIsNotConstructed
	}
	return f.guard.Validate(ErrFulfillmentIsNotConstructed)
}

// ID returns the fulfillment identifier.
func (f *Fulfillment) ID() kernel.UUID { return f.id }

// OrderID returns the id of the order owning this fulfillment.
func (f *Fulfillment) OrderID() kernel.UUID { return f.orderID }

// IsCompleted reports whether the fulfillment has been sealed and shipped.
func (f *Fulfillment) IsCompleted() bool { return f.completed }

// TrackingNumber returns the recorded tracking number, empty if none.
func (f *Fulfillment) TrackingNumber() string { return f.trackingNumber }

// Lines returns the fulfillment lines in insertion order.
func (f *Fulfillment) Lines() []*FulfillmentLine {
	return append([]*FulfillmentLine(nil), f.lines...)
}

// lineForOrderLine returns the fulfillment line assigned to the given order
// line, or nil when the pair has no line yet.
func (f *Fulfillment) lineForOrderLine(orderLineID kernel.UUID) *FulfillmentLine {
	for _, line := range f.lines {
		if line.orderLineID.IsEqual(orderLineID) {
			return line
		}
	}
	return nil
}

// lineByID returns the contained fulfillment line with the given id, or nil.
func (f *Fulfillment) lineByID(id kernel.UUID) *FulfillmentLine {
	for _, line := range f.lines {
		if line.id.IsEqual(id) {
			return line
		}
	}
	return nil
}

// removeLine detaches the fulfillment line with the given id.
func (f *Fulfillment) removeLine(id kernel.UUID) {
	for i, line := range f.lines {
		if line.id.IsEqual(id) {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return
		}
	}
}

// complete seals the fulfillment and optionally records a tracking number.
func (f *Fulfillment) complete(trackingNumber string) error {
	if f.completed {
		return errs.NewBusinessRuleViolationError(
			"FULFILLMENT_ALREADY_COMPLETED",
			"fulfillment %s is already completed", f.id,
		)
	}
	f.completed = true
	f.trackingNumber = trackingNumber
	return nil
}

// setTrackingNumber records a tracking number on a completed fulfillment.
func (f *Fulfillment) setTrackingNumber(trackingNumber string) error {
	if !f.completed {
		return errs.NewBusinessRuleViolationError(
			"FULFILLMENT_NOT_COMPLETED",
			"fulfillment %s is not completed", f.id,
		)
	}
	f.trackingNumber = trackingNumber
	return nil
}

func (f *Fulfillment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Fulfillment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	f.orderID = orderID
	return nil
}

// newFulfillmentLine creates a line inside the owning fulfillment. Callers
// outside the aggregate go through Order.CreateFulfillment or
// Order.AddFulfillmentLines instead.
func newFulfillmentLine(
	id kernel.UUID,
	fulfillmentID kernel.UUID,
	orderLineID kernel.UUID,
	quantity int,
) (*FulfillmentLine, error) {
	line := &FulfillmentLine{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setFulfillmentID(fulfillmentID),
		line.setOrderLineID(orderLineID),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreFulfillmentLine reconstructs a fulfillment line from persistence.
func RestoreFulfillmentLine(
	id kernel.UUID,
	fulfillmentID kernel.UUID,
	orderLineID kernel.UUID,
	quantity int,
) (*FulfillmentLine, error) {
	return newFulfillmentLine(id, fulfillmentID, orderLineID, quantity)
}

// Validate ensures the FulfillmentLine was created through a constructor.
func (l *FulfillmentLine) Validate() error {
	if l == nil {
		return ErrFulfillmentLineIsNotConstructed
	}
	return l.guard.Validate(ErrFulfillmentLineIsNotConstructed)
}

// ID returns the fulfillment line identifier.
func (l *FulfillmentLine) ID() kernel.UUID { return l.id }

// FulfillmentID returns the id of the owning fulfillment.
func (l *FulfillmentLine) FulfillmentID() kernel.UUID { return l.fulfillmentID }

// OrderLineID returns the id of the referenced order line.
func (l *FulfillmentLine) OrderLineID() kernel.UUID { return l.orderLineID }

// Quantity returns the quantity assigned by this line.
func (l *FulfillmentLine) Quantity() int { return l.quantity }

func (l *FulfillmentLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *FulfillmentLine) setFulfillmentID(fulfillmentID kernel.UUID) error {
	if err := fulfillmentID.Validate(); err != nil {
		return err
	}
	l.fulfillmentID = fulfillmentID
	return nil
}

func (l *FulfillmentLine) setOrderLineID(orderLineID kernel.UUID) error {
	if err := orderLineID.Validate(); err != nil {
		return err
	}
	l.orderLineID = orderLineID
	return nil
}

func (l *FulfillmentLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	l.quantity = quantity
	return nil
}
