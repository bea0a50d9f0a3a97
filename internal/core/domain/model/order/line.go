package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed indicates that a Line was not created through
// NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an order line: a product variant, the quantity ordered, and the
// quantity ledger tracking how much of it has been assigned to fulfillments.
//
// Ledger invariant: 0 <= fulfilledQuantity <= quantity at all times. The
// assignable quantity (quantity - fulfilledQuantity) is the remaining
// capacity for new fulfillment-line assignments.
type Line struct {
	id                kernel.UUID
	orderID           kernel.UUID
	variantID         kernel.UUID
	quantity          int
	fulfilledQuantity int
	shippingRequired  bool
	unitPrice         decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewLine creates a fresh order line with an empty ledger.
func NewLine(
	id kernel.UUID,
	orderID kernel.UUID,
	variantID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	shippingRequired bool,
) (*Line, error) {
	line := &Line{
		shippingRequired: shippingRequired,
		guard:            kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setVariantID(variantID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs an order line from persistence, including its
// current fulfilled quantity.
func RestoreLine(
	id kernel.UUID,
	orderID kernel.UUID,
	variantID kernel.UUID,
	quantity int,
	fulfilledQuantity int,
	unitPrice decimal.Decimal,
	shippingRequired bool,
) (*Line, error) {
	line, err := NewLine(id, orderID, variantID, quantity, unitPrice, shippingRequired)
	if err != nil {
		return nil, err
	}

	if fulfilledQuantity < 0 || fulfilledQuantity > quantity {
		return nil, errs.NewValueIsOutOfRangeError("fulfilledQuantity", fulfilledQuantity, 0, quantity)
	}
	line.fulfilledQuantity = fulfilledQuantity

	return line, nil
}

// Validate ensures the Line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID { return l.id }

// OrderID returns the id of the order owning this line.
func (l *Line) OrderID() kernel.UUID { return l.orderID }

// VariantID returns the ordered product variant id.
func (l *Line) VariantID() kernel.UUID { return l.variantID }

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int { return l.quantity }

// FulfilledQuantity returns how much of the line is currently assigned to
// fulfillments.
func (l *Line) FulfilledQuantity() int { return l.fulfilledQuantity }

// AssignableQuantity returns the remaining capacity for new fulfillment-line
// assignments: quantity - fulfilledQuantity.
func (l *Line) AssignableQuantity() int {
	return l.quantity - l.fulfilledQuantity
}

// IsFullyFulfilled reports whether the whole ordered quantity is assigned.
func (l *Line) IsFullyFulfilled() bool {
	return l.fulfilledQuantity == l.quantity
}

// ShippingRequired reports whether the line's variant is a physical good.
// Lines that do not require shipping are skipped by fulfillment bookkeeping.
func (l *Line) ShippingRequired() bool { return l.shippingRequired }

// UnitPrice returns the unit price snapshotted at checkout time.
func (l *Line) UnitPrice() decimal.Decimal { return l.unitPrice }

// assign increments the fulfilled quantity. The caller must have verified
// the amount against AssignableQuantity; the ledger check here is the last
// line of defense for the 0 <= fulfilled <= quantity invariant.
func (l *Line) assign(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	if amount > l.AssignableQuantity() {
		return errInsufficientAssignableQuantity(l, amount)
	}
	l.fulfilledQuantity += amount
	return nil
}

// release decrements the fulfilled quantity after a fulfillment line was
// removed or shrunk.
func (l *Line) release(amount int) error {
	if amount <= 0 || amount > l.fulfilledQuantity {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, l.fulfilledQuantity)
	}
	l.fulfilledQuantity -= amount
	return nil
}

func errInsufficientAssignableQuantity(l *Line, requested int) error {
	return errs.NewBusinessRuleViolationError(
		"INSUFFICIENT_ORDER_LINE_ASSIGNABLE_QUANTITY",
		"order line %s has %d assignable, %d requested",
		l.id, l.AssignableQuantity(), requested,
	)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Line) setVariantID(variantID kernel.UUID) error {
	if err := variantID.Validate(); err != nil {
		return err
	}
	l.variantID = variantID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	l.unitPrice = unitPrice
	return nil
}
