package checkout

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

// Line is a checkout line: a product variant and the quantity the customer
// wants. Price, mass and physicality are snapshotted from the variant when
// the line enters the checkout, so later catalog edits do not shift the
// totals under the customer.
type Line struct {
	id        kernel.UUID
	variantID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	massGrams int
	physical  bool

	guard kernel.ConstructorGuard
}

// NewLine creates a validated checkout line.
func NewLine(
	id kernel.UUID,
	variantID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	massGrams int,
	physical bool,
) (*Line, error) {
	line := &Line{
		physical: physical,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setVariantID(variantID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setMassGrams(massGrams),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a checkout line from persistence.
func RestoreLine(
	id kernel.UUID,
	variantID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	massGrams int,
	physical bool,
) (*Line, error) {
	return NewLine(id, variantID, quantity, unitPrice, massGrams, physical)
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

// VariantID returns the ordered product variant id.
func (l *Line) VariantID() kernel.UUID { return l.variantID }

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int { return l.quantity }

// UnitPrice returns the unit price snapshotted from the variant.
func (l *Line) UnitPrice() decimal.Decimal { return l.unitPrice }

// MassGrams returns the unit mass in grams, zero for digital variants.
func (l *Line) MassGrams() int { return l.massGrams }

// IsPhysical reports whether the line's variant is a physical good.
func (l *Line) IsPhysical() bool { return l.physical }

// Subtotal returns quantity times unit price.
func (l *Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
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

func (l *Line) setMassGrams(massGrams int) error {
	if massGrams < 0 {
		return errs.NewValueIsInvalidError("massGrams")
	}
	l.massGrams = massGrams
	return nil
}
