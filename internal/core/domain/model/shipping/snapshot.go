package shipping

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMethodSnapshotIsNotConstructed indicates that a MethodSnapshot was not
// created through NewMethodSnapshot.
var ErrMethodSnapshotIsNotConstructed = errors.New(
	"MethodSnapshot must be created via NewMethodSnapshot constructor",
)

// MethodSnapshot is the frozen record of a selected shipping method together
// with the rate quoted at selection time. Checkouts store it while shipping
// is being chosen; completed orders carry it permanently, so later edits to
// the method never change what the customer was charged.
type MethodSnapshot struct {
	methodID kernel.UUID
	name     string
	rate     decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewMethodSnapshot freezes a method selection into a snapshot.
func NewMethodSnapshot(methodID kernel.UUID, name string, rate decimal.Decimal) (MethodSnapshot, error) {
	if err := methodID.Validate(); err != nil {
		return MethodSnapshot{}, err
	}
	if name == "" {
		return MethodSnapshot{}, errs.NewValueIsRequiredError("name")
	}
	if rate.IsNegative() {
		return MethodSnapshot{}, errs.NewValueIsInvalidError("rate")
	}

	return MethodSnapshot{
		methodID: methodID,
		name:     name,
		rate:     rate,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// SnapshotOf freezes the given method into a snapshot carrying its current rate.
func SnapshotOf(method *Method) (MethodSnapshot, error) {
	if err := method.Validate(); err != nil {
		return MethodSnapshot{}, err
	}
	return NewMethodSnapshot(method.ID(), method.Name(), method.Rate())
}

// Validate ensures the snapshot was created through NewMethodSnapshot.
func (s MethodSnapshot) Validate() error {
	return s.guard.Validate(ErrMethodSnapshotIsNotConstructed)
}

// MethodID returns the id of the snapshotted method.
func (s MethodSnapshot) MethodID() kernel.UUID { return s.methodID }

// Name returns the method name at selection time.
func (s MethodSnapshot) Name() string { return s.name }

// Rate returns the rate quoted at selection time.
func (s MethodSnapshot) Rate() decimal.Decimal { return s.rate }
