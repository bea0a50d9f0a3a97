// Package store holds the active store configuration read model.
package store

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrConfigurationIsNotConstructed indicates that a Configuration was not
// created through RestoreConfiguration.
var ErrConfigurationIsNotConstructed = errors.New(
	"Configuration must be created via RestoreConfiguration constructor",
)

// Configuration is the active store configuration. It exposes the currency
// all money amounts are denominated in and, when physical goods are sold, the
// unit shipping masses are measured in.
type Configuration struct {
	currency string
	massUnit string

	guard kernel.ConstructorGuard
}

// RestoreConfiguration reconstructs the active configuration from
// persistence. Currency is required; the mass unit may be absent when the
// store sells no physical goods.
func RestoreConfiguration(currency, massUnit string) (*Configuration, error) {
	if currency == "" {
		return nil, errs.NewValueIsRequiredError("currency")
	}

	return &Configuration{
		currency: currency,
		massUnit: massUnit,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Configuration was created through RestoreConfiguration.
func (c *Configuration) Validate() error {
	if c == nil {
		return ErrConfigurationIsNotConstructed
	}
	return c.guard.Validate(ErrConfigurationIsNotConstructed)
}

// Currency returns the ISO 4217 store currency code.
func (c *Configuration) Currency() string { return c.currency }

// MassUnit returns the configured mass unit, empty when none is configured.
func (c *Configuration) MassUnit() string { return c.massUnit }

// HasMassUnit reports whether a mass unit is configured. Checkouts containing
// physical goods require one.
func (c *Configuration) HasMassUnit() bool { return c.massUnit != "" }
