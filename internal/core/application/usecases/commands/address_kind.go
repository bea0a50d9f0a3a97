package commands

import "storefront/internal/pkg/errs"

// AddressKind selects which of a checkout's two addresses a command targets.
type AddressKind int

const (
	// UnknownAddressKind is the zero value and never valid.
	UnknownAddressKind AddressKind = iota
	// BillingAddressKind targets the billing address.
	BillingAddressKind
	// ShippingAddressKind targets the shipping address.
	ShippingAddressKind
)

// Validate ensures the kind is one of the defined values.
func (k AddressKind) Validate() error {
	if k != BillingAddressKind && k != ShippingAddressKind {
		return errs.NewValueIsInvalidError("addressKind")
	}
	return nil
}

// String returns the kind's name for logs and errors.
func (k AddressKind) String() string {
	switch k {
	case BillingAddressKind:
		return "billing"
	case ShippingAddressKind:
		return "shipping"
	default:
		return "unknown"
	}
}
