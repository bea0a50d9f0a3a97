// Package product holds the catalog read models the checkout engine consumes.
// Catalog CRUD itself lives outside this service; variants arrive here already
// persisted and are never mutated.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrVariantIsNotConstructed indicates that a Variant was not created through
// RestoreVariant.
var ErrVariantIsNotConstructed = errors.New("Variant must be created via RestoreVariant constructor")

// Variant is a purchasable product variant snapshot. Physical variants carry a
// mass and require shipping; digital variants do not. Unpublished variants
// must never enter a checkout.
type Variant struct {
	id        kernel.UUID
	productID kernel.UUID
	name      string
	price     decimal.Decimal
	massGrams int
	physical  bool
	published bool

	guard kernel.ConstructorGuard
}

// RestoreVariant reconstructs a Variant from persistence.
func RestoreVariant(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	price decimal.Decimal,
	massGrams int,
	physical bool,
	published bool,
) (*Variant, error) {
	variant := &Variant{
		name:      name,
		price:     price,
		physical:  physical,
		published: published,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		variant.setID(id),
		variant.setProductID(productID),
		variant.setMassGrams(massGrams),
	); err != nil {
		return nil, err
	}

	return variant, nil
}

// Validate ensures the Variant was created through RestoreVariant.
func (v *Variant) Validate() error {
	if v == nil {
		return ErrVariantIsNotConstructed
	}
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

// ID returns the variant identifier.
func (v *Variant) ID() kernel.UUID { return v.id }

// ProductID returns the owning product identifier.
func (v *Variant) ProductID() kernel.UUID { return v.productID }

// Name returns the variant display name.
func (v *Variant) Name() string { return v.name }

// Price returns the unit price.
func (v *Variant) Price() decimal.Decimal { return v.price }

// MassGrams returns the unit mass in grams. Zero for digital variants.
func (v *Variant) MassGrams() int { return v.massGrams }

// IsPhysical reports whether the variant is a physical good requiring shipping.
func (v *Variant) IsPhysical() bool { return v.physical }

// IsPublished reports whether the owning product is published.
func (v *Variant) IsPublished() bool { return v.published }

func (v *Variant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Variant) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	v.productID = productID
	return nil
}

func (v *Variant) setMassGrams(massGrams int) error {
	if massGrams < 0 {
		return errs.NewValueIsInvalidError("massGrams")
	}
	v.massGrams = massGrams
	return nil
}
