package shipping

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMethodIsNotConstructed indicates that a Method was not created through
// NewMethod or RestoreMethod.
var ErrMethodIsNotConstructed = errors.New("Method must be created via NewMethod constructor")

// MethodKind determines which shipment parameter a method's [min, max] range
// applies to: the total mass of the shipment or its total price.
type MethodKind int

const (
	// UnknownKind represents an invalid or undefined method kind.
	UnknownKind MethodKind = iota

	// Weight ranges over the shipment's total mass.
	Weight

	// Price ranges over the shipment's total price.
	Price
)

func getKindStrings() map[MethodKind]string {
	return map[MethodKind]string{
		UnknownKind: "Unknown",
		Weight:      "Weight",
		Price:       "Price",
	}
}

// Validate checks that the MethodKind is Weight or Price.
func (k MethodKind) Validate() error {
	if k != Weight && k != Price {
		return errs.NewValueIsInvalidErrorWithCause("methodKind",
			fmt.Errorf("%d is not a valid method kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k MethodKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Method is a shipping method offered within a zone. It applies to a shipment
// whose parameter (mass for Weight methods, price for Price methods) falls
// inside the inclusive [min, max] range, and charges a flat rate.
type Method struct {
	id       kernel.UUID
	name     string
	kind     MethodKind
	minValue decimal.Decimal
	maxValue decimal.Decimal
	rate     decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewMethod creates a validated shipping method.
func NewMethod(
	id kernel.UUID,
	name string,
	kind MethodKind,
	minValue, maxValue decimal.Decimal,
	rate decimal.Decimal,
) (*Method, error) {
	method := &Method{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		method.setID(id),
		method.setName(name),
		method.setKind(kind),
		method.setRange(minValue, maxValue),
		method.setRate(rate),
	); err != nil {
		return nil, err
	}

	return method, nil
}

// RestoreMethod reconstructs a shipping method from persistence.
func RestoreMethod(
	id kernel.UUID,
	name string,
	kind MethodKind,
	minValue, maxValue decimal.Decimal,
	rate decimal.Decimal,
) (*Method, error) {
	return NewMethod(id, name, kind, minValue, maxValue, rate)
}

// Validate ensures the Method was created through a constructor.
func (m *Method) Validate() error {
	if m == nil {
		return ErrMethodIsNotConstructed
	}
	return m.guard.Validate(ErrMethodIsNotConstructed)
}

// ID returns the method identifier.
func (m *Method) ID() kernel.UUID { return m.id }

// Name returns the method display name.
func (m *Method) Name() string { return m.name }

// Kind returns whether the method ranges over mass or price.
func (m *Method) Kind() MethodKind { return m.kind }

// MinValue returns the inclusive lower bound of the applicable range.
func (m *Method) MinValue() decimal.Decimal { return m.minValue }

// MaxValue returns the inclusive upper bound of the applicable range.
func (m *Method) MaxValue() decimal.Decimal { return m.maxValue }

// Rate returns the flat shipping rate charged by this method.
func (m *Method) Rate() decimal.Decimal { return m.rate }

// AppliesTo reports whether the shipment parameter falls inside the method's
// inclusive [min, max] range.
func (m *Method) AppliesTo(parameter decimal.Decimal) bool {
	return parameter.GreaterThanOrEqual(m.minValue) && parameter.LessThanOrEqual(m.maxValue)
}

func (m *Method) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Method) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Method) setKind(kind MethodKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

func (m *Method) setRange(minValue, maxValue decimal.Decimal) error {
	if minValue.IsNegative() {
		return errs.NewValueIsInvalidError("minValue")
	}
	if maxValue.LessThan(minValue) {
		return errs.NewValueIsInvalidErrorWithCause("maxValue",
			fmt.Errorf("%s is less than min value %s", maxValue, minValue))
	}
	m.minValue = minValue
	m.maxValue = maxValue
	return nil
}

func (m *Method) setRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidError("rate")
	}
	m.rate = rate
	return nil
}
