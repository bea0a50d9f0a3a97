package services

import (
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrNoApplicableMethod is returned when a zone offers no method whose range
// covers the shipment parameter for the destination country.
var ErrNoApplicableMethod = errors.New("no applicable shipping method")

// MethodSelector is a domain service matching shipments to shipping methods.
//
// A method candidate matches iff the destination country belongs to the
// method's zone and the shipment parameter falls inside the method's
// inclusive [min, max] range. The shipment parameter is the shipment's total
// mass for Weight-typed methods and its total price for Price-typed methods.
type MethodSelector struct{}

// NewMethodSelector creates a new MethodSelector instance.
func NewMethodSelector() MethodSelector {
	return MethodSelector{}
}

// Select returns the first method in the zone applicable to a shipment with
// the given destination and parameters, scanning methods in zone order.
// Returns ErrNoApplicableMethod when none matches.
func (s MethodSelector) Select(
	zone *shipping.Zone,
	countryCode string,
	totalMass decimal.Decimal,
	totalPrice decimal.Decimal,
) (*shipping.Method, error) {
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	if !zone.ServesCountry(countryCode) {
		return nil, ErrNoApplicableMethod
	}

	for _, method := range zone.Methods() {
		parameter := totalMass
		if method.Kind() == shipping.Price {
			parameter = totalPrice
		}
		if method.AppliesTo(parameter) {
			return method, nil
		}
	}

	return nil, ErrNoApplicableMethod
}

// SelectForCheckout validates that the chosen method may serve the checkout
// and freezes it into a snapshot. The destination country must belong to the
// method's zone and the checkout's shipment parameter must fall inside the
// method's range; either violation is reported as an invalid shipping method
// for this checkout.
func (s MethodSelector) SelectForCheckout(
	zone *shipping.Zone,
	c *checkout.Checkout,
	methodID kernel.UUID,
) (shipping.MethodSnapshot, error) {
	if err := zone.Validate(); err != nil {
		return shipping.MethodSnapshot{}, err
	}
	if err := c.Validate(); err != nil {
		return shipping.MethodSnapshot{}, err
	}

	method, err := zone.MethodByID(methodID)
	if err != nil {
		return shipping.MethodSnapshot{}, err
	}

	address := c.ShippingAddress()
	if address == nil {
		return shipping.MethodSnapshot{}, errs.NewBusinessRuleViolationError(
			"CHECKOUT_MISSING_DETAILS",
			"checkout %s is missing shipping address", c.ID(),
		)
	}

	if !zone.ServesCountry(address.CountryCode()) {
		return shipping.MethodSnapshot{}, errInvalidShippingMethod(c.ID(), methodID)
	}

	parameter, err := c.ShipmentParameter(method.Kind())
	if err != nil {
		return shipping.MethodSnapshot{}, err
	}
	if !method.AppliesTo(parameter) {
		return shipping.MethodSnapshot{}, errInvalidShippingMethod(c.ID(), methodID)
	}

	return shipping.SnapshotOf(method)
}

func errInvalidShippingMethod(checkoutID, methodID kernel.UUID) error {
	return errs.NewBusinessRuleViolationError(
		"CHECKOUT_INVALID_SHIPPINGMETHOD",
		"shipping method %s is not applicable to checkout %s", methodID, checkoutID,
	)
}
