// Package customer holds the customer-owned read models the checkout engine
// consumes, currently the saved address book entries a checkout can reference.
package customer

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrAddressIsNotConstructed indicates that an Address was not created
// through RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("customer Address must be created via RestoreAddress constructor")

// Address is a saved address book entry belonging to one customer. A checkout
// may only reference entries owned by its own customer.
type Address struct {
	id         kernel.UUID
	customerID kernel.UUID
	value      kernel.Address

	guard kernel.ConstructorGuard
}

// RestoreAddress reconstructs a saved address from persistence.
func RestoreAddress(id kernel.UUID, customerID kernel.UUID, value kernel.Address) (*Address, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), value.Validate()); err != nil {
		return nil, err
	}

	return &Address{
		id:         id,
		customerID: customerID,
		value:      value,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through RestoreAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address book entry identifier.
func (a *Address) ID() kernel.UUID { return a.id }

// CustomerID returns the owning customer's id.
func (a *Address) CustomerID() kernel.UUID { return a.customerID }

// Value returns the postal address itself.
func (a *Address) Value() kernel.Address { return a.value }

// BelongsTo reports whether the entry is owned by the given customer.
func (a *Address) BelongsTo(customerID kernel.UUID) bool {
	return a.customerID.IsEqual(customerID)
}
