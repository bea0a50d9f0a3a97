package kernel

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not created through
// NewAddress and is therefore unusable.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object representing a postal address attached to a
// checkout or an order. Line2 and FullName are optional; everything else is
// required. Address is immutable: mutation happens by deriving a patched copy.
type Address struct {
	fullName    string
	line1       string
	line2       string
	city        string
	postalCode  string
	countryCode string

	guard ConstructorGuard
}

// AddressPatch carries a partial update of an Address. Each field is tri-state:
// absent fields are left untouched, null fields are cleared (only valid for
// the optional fields), value fields overwrite.
type AddressPatch struct {
	FullName    Optional[string]
	Line1       Optional[string]
	Line2       Optional[string]
	City        Optional[string]
	PostalCode  Optional[string]
	CountryCode Optional[string]
}

// NewAddress creates a validated Address. Line1, city, postal code and
// country code are required; full name and line2 may be empty.
func NewAddress(fullName, line1, line2, city, postalCode, countryCode string) (Address, error) {
	address := Address{
		fullName: fullName,
		line2:    line2,
		guard:    NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setLine1(line1),
		address.setCity(city),
		address.setPostalCode(postalCode),
		address.setCountryCode(countryCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the addressee name. May be empty.
func (a Address) FullName() string { return a.fullName }

// Line1 returns the first street line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the second street line. May be empty.
func (a Address) Line2() string { return a.line2 }

// City returns the city name.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// CountryCode returns the ISO 3166-1 alpha-2 destination country code.
func (a Address) CountryCode() string { return a.countryCode }

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.fullName == other.fullName &&
		a.line1 == other.line1 &&
		a.line2 == other.line2 &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.countryCode == other.countryCode
}

// Patched returns a copy of the address with the patch applied. Required
// fields reject explicit nulls; optional fields (full name, line2) accept
// them and are cleared.
func (a Address) Patched(patch AddressPatch) (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	patched := a

	if patch.FullName.IsNull() {
		patched.fullName = ""
	} else if v, ok := patch.FullName.Value(); ok {
		patched.fullName = v
	}

	if patch.Line2.IsNull() {
		patched.line2 = ""
	} else if v, ok := patch.Line2.Value(); ok {
		patched.line2 = v
	}

	var err error
	if patch.Line1.IsPresent() {
		err = errors.Join(err, patched.setLine1(patch.Line1.OrElse("")))
	}
	if patch.City.IsPresent() {
		err = errors.Join(err, patched.setCity(patch.City.OrElse("")))
	}
	if patch.PostalCode.IsPresent() {
		err = errors.Join(err, patched.setPostalCode(patch.PostalCode.OrElse("")))
	}
	if patch.CountryCode.IsPresent() {
		err = errors.Join(err, patched.setCountryCode(patch.CountryCode.OrElse("")))
	}
	if err != nil {
		return Address{}, err
	}

	return patched, nil
}

func (a *Address) setLine1(line1 string) error {
	if line1 == "" {
		return errs.NewValueIsRequiredError("line1")
	}
	a.line1 = line1
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountryCode(countryCode string) error {
	if len(countryCode) != 2 {
		return errs.NewValueIsInvalidError("countryCode")
	}
	a.countryCode = countryCode
	return nil
}
