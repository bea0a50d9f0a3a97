// Package shipping models shipping zones and the methods they offer.
// A zone owns a set of destination countries (each country belongs to at most
// one zone at a time) and a set of shipping methods. Zone and country CRUD is
// managed elsewhere; this package provides the aggregate the method selection
// algorithm runs against.
package shipping

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrZoneIsNotConstructed indicates that a Zone was not created through
// NewZone or RestoreZone.
var ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

// Zone is a shipping zone aggregate: a named set of destination countries and
// the shipping methods available for them.
type Zone struct {
	id        kernel.UUID
	name      string
	countries []string
	methods   []*Method

	guard kernel.ConstructorGuard
}

// NewZone creates a validated zone. Country codes are ISO 3166-1 alpha-2.
func NewZone(id kernel.UUID, name string, countries []string, methods []*Method) (*Zone, error) {
	zone := &Zone{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		zone.setID(id),
		zone.setName(name),
		zone.setCountries(countries),
		zone.setMethods(methods),
	); err != nil {
		return nil, err
	}

	return zone, nil
}

// RestoreZone reconstructs a zone from persistence.
func RestoreZone(id kernel.UUID, name string, countries []string, methods []*Method) (*Zone, error) {
	return NewZone(id, name, countries, methods)
}

// Validate ensures the Zone was created through a constructor.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone identifier.
func (z *Zone) ID() kernel.UUID { return z.id }

// Name returns the zone display name.
func (z *Zone) Name() string { return z.name }

// Countries returns the country codes served by the zone.
func (z *Zone) Countries() []string {
	return append([]string(nil), z.countries...)
}

// Methods returns the shipping methods offered in the zone.
func (z *Zone) Methods() []*Method {
	return append([]*Method(nil), z.methods...)
}

// ServesCountry reports whether the given country code belongs to the zone.
func (z *Zone) ServesCountry(countryCode string) bool {
	for _, c := range z.countries {
		if c == countryCode {
			return true
		}
	}
	return false
}

// MethodByID returns the zone's method with the given id, or an
// ObjectNotFoundError when the zone does not offer it.
func (z *Zone) MethodByID(id kernel.UUID) (*Method, error) {
	for _, m := range z.methods {
		if m.ID().IsEqual(id) {
			return m, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("shippingMethodId", id.String())
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = name
	return nil
}

func (z *Zone) setCountries(countries []string) error {
	for _, c := range countries {
		if len(c) != 2 {
			return errs.NewValueIsInvalidError("countryCode")
		}
	}
	z.countries = append([]string(nil), countries...)
	return nil
}

func (z *Zone) setMethods(methods []*Method) error {
	for _, m := range methods {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	z.methods = append([]*Method(nil), methods...)
	return nil
}
