package checkout

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCheckoutIsNotConstructed is returned when a Checkout instance was not
// created through NewCheckout or RestoreCheckout.
var ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

// Checkout is the mutable pre-order aggregate: the customer's lines,
// addresses, shipping selection and payment intent, accumulated until
// completion turns it into an immutable order (or cancellation discards it).
//
// Invariants:
//   - lines are non-empty with positive quantities
//   - shippingRequired is derived: true iff any line is physical
//   - shipping address and method operations require shippingRequired
//   - changing the shipping address clears the selected method and quote
type Checkout struct {
	id         kernel.UUID
	customerID kernel.UUID
	email      string
	ipAddress  string
	lines      []*Line

	billingAddress  *kernel.Address
	shippingAddress *kernel.Address
	shippingMethod  *shipping.MethodSnapshot
	paymentID       string

	useSingleAddress         bool
	saveCustomerAddresses    bool
	savePaymentMethodDefault bool
	shippingRequired         bool

	createdAt time.Time

	guard kernel.ConstructorGuard
}

// NewCheckout creates a checkout for a customer. shippingRequired is derived
// from the lines: true iff any line's variant is physical.
func NewCheckout(
	id kernel.UUID,
	customerID kernel.UUID,
	email string,
	ipAddress string,
	lines []*Line,
	createdAt time.Time,
) (*Checkout, error) {
	c := &Checkout{
		ipAddress: ipAddress,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
		c.setEmail(email),
		c.setLines(lines),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCheckout reconstructs a checkout from persistence.
func RestoreCheckout(
	id kernel.UUID,
	customerID kernel.UUID,
	email string,
	ipAddress string,
	lines []*Line,
	billingAddress *kernel.Address,
	shippingAddress *kernel.Address,
	shippingMethod *shipping.MethodSnapshot,
	paymentID string,
	useSingleAddress bool,
	saveCustomerAddresses bool,
	savePaymentMethodDefault bool,
	createdAt time.Time,
) (*Checkout, error) {
	c, err := NewCheckout(id, customerID, email, ipAddress, lines, createdAt)
	if err != nil {
		return nil, err
	}

	if billingAddress != nil {
		if err = billingAddress.Validate(); err != nil {
			return nil, err
		}
	}
	if shippingAddress != nil {
		if err = shippingAddress.Validate(); err != nil {
			return nil, err
		}
	}
	if shippingMethod != nil {
		if err = shippingMethod.Validate(); err != nil {
			return nil, err
		}
	}

	c.billingAddress = billingAddress
	c.shippingAddress = shippingAddress
	c.shippingMethod = shippingMethod
	c.paymentID = paymentID
	c.useSingleAddress = useSingleAddress
	c.saveCustomerAddresses = saveCustomerAddresses
	c.savePaymentMethodDefault = savePaymentMethodDefault

	return c, nil
}

// Validate ensures the Checkout instance was properly constructed.
func (c *Checkout) Validate() error {
	if c == nil {
		return ErrCheckoutIsNotConstructed
	}
	return c.guard.Validate(ErrCheckoutIsNotConstructed)
}

// ID returns the checkout identifier.
func (c *Checkout) ID() kernel.UUID { return c.id }

// CustomerID returns the owning customer's id. A customer has at most one
// checkout at a time; the uniqueness is enforced at creation.
func (c *Checkout) CustomerID() kernel.UUID { return c.customerID }

// Email returns the customer contact email.
func (c *Checkout) Email() string { return c.email }

// IPAddress returns the client ip recorded at creation.
func (c *Checkout) IPAddress() string { return c.ipAddress }

// Lines returns the checkout lines.
func (c *Checkout) Lines() []*Line {
	return append([]*Line(nil), c.lines...)
}

// BillingAddress returns the billing address, nil when not yet supplied.
func (c *Checkout) BillingAddress() *kernel.Address { return c.billingAddress }

// ShippingAddress returns the shipping address, nil when not yet supplied.
func (c *Checkout) ShippingAddress() *kernel.Address { return c.shippingAddress }

// ShippingMethod returns the selected method snapshot, nil when none is
// selected.
func (c *Checkout) ShippingMethod() *shipping.MethodSnapshot { return c.shippingMethod }

// PaymentID returns the payment intent reference, empty when none exists.
func (c *Checkout) PaymentID() string { return c.paymentID }

// HasPayment reports whether a payment intent has been requested.
func (c *Checkout) HasPayment() bool { return c.paymentID != "" }

// UsesSingleAddress reports whether billing doubles as shipping address.
func (c *Checkout) UsesSingleAddress() bool { return c.useSingleAddress }

// SaveCustomerAddresses reports whether addresses should be saved to the
// customer's address book on completion.
func (c *Checkout) SaveCustomerAddresses() bool { return c.saveCustomerAddresses }

// SavePaymentMethodAsDefault reports whether the payment method should become
// the customer's default on completion.
func (c *Checkout) SavePaymentMethodAsDefault() bool { return c.savePaymentMethodDefault }

// ShippingRequired reports whether any line is a physical good.
func (c *Checkout) ShippingRequired() bool { return c.shippingRequired }

// CreatedAt returns the checkout creation time.
func (c *Checkout) CreatedAt() time.Time { return c.createdAt }

// ItemsTotal returns the sum of the line subtotals.
func (c *Checkout) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Total returns the amount to charge: the items total plus the selected
// shipping rate, if any.
func (c *Checkout) Total() decimal.Decimal {
	total := c.ItemsTotal()
	if c.shippingMethod != nil {
		total = total.Add(c.shippingMethod.Rate())
	}
	return total
}

// TotalMassGrams returns the summed mass of all physical lines.
func (c *Checkout) TotalMassGrams() int {
	total := 0
	for _, line := range c.lines {
		if line.physical {
			total += line.massGrams * line.quantity
		}
	}
	return total
}

// ShipmentParameter returns the value a shipping method's range is matched
// against: the total mass for Weight methods, the items total for Price
// methods.
func (c *Checkout) ShipmentParameter(kind shipping.MethodKind) (decimal.Decimal, error) {
	switch kind {
	case shipping.Weight:
		return decimal.NewFromInt(int64(c.TotalMassGrams())), nil
	case shipping.Price:
		return c.ItemsTotal(), nil
	default:
		return decimal.Zero, errs.NewValueIsInvalidError("methodKind")
	}
}

// SetBillingAddress sets or replaces the billing address. When the checkout
// uses a single address, the shipping address follows.
func (c *Checkout) SetBillingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.billingAddress = &address
	if c.useSingleAddress && c.shippingRequired {
		return c.SetShippingAddress(address)
	}
	return nil
}

// UpdateBillingAddress applies a partial update to the existing billing
// address. A checkout without one is rejected.
func (c *Checkout) UpdateBillingAddress(patch kernel.AddressPatch) error {
	if c.billingAddress == nil {
		return errNullAddress(c, "billing")
	}

	patched, err := c.billingAddress.Patched(patch)
	if err != nil {
		return err
	}

	c.billingAddress = &patched
	if c.useSingleAddress && c.shippingRequired {
		return c.SetShippingAddress(patched)
	}
	return nil
}

// SetShippingAddress sets or replaces the shipping address and clears any
// previously selected shipping method and quote, since the selection may no
// longer apply to the new destination.
func (c *Checkout) SetShippingAddress(address kernel.Address) error {
	if err := c.ensureShippingRequired(); err != nil {
		return err
	}
	if err := address.Validate(); err != nil {
		return err
	}

	c.shippingAddress = &address
	c.shippingMethod = nil
	return nil
}

// UpdateShippingAddress applies a partial update to the existing shipping
// address. The selected shipping method is cleared, as with SetShippingAddress.
func (c *Checkout) UpdateShippingAddress(patch kernel.AddressPatch) error {
	if err := c.ensureShippingRequired(); err != nil {
		return err
	}
	if c.shippingAddress == nil {
		return errNullAddress(c, "shipping")
	}

	patched, err := c.shippingAddress.Patched(patch)
	if err != nil {
		return err
	}

	c.shippingAddress = &patched
	c.shippingMethod = nil
	return nil
}

// UseSingleAddress toggles the single-address flag. Enabling it while a
// billing address exists mirrors it to the shipping address.
func (c *Checkout) UseSingleAddress(enabled bool) error {
	c.useSingleAddress = enabled
	if enabled && c.shippingRequired && c.billingAddress != nil {
		return c.SetShippingAddress(*c.billingAddress)
	}
	return nil
}

// MarkSaveCustomerAddresses sets the save-addresses-on-completion flag.
func (c *Checkout) MarkSaveCustomerAddresses(enabled bool) {
	c.saveCustomerAddresses = enabled
}

// MarkSavePaymentMethodAsDefault sets the save-payment-method flag.
func (c *Checkout) MarkSavePaymentMethodAsDefault(enabled bool) {
	c.savePaymentMethodDefault = enabled
}

// SetShippingMethod stores the selected method snapshot. The zone and range
// checks happen in the shipping selector before this is called.
func (c *Checkout) SetShippingMethod(snapshot shipping.MethodSnapshot) error {
	if err := c.ensureShippingRequired(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if c.shippingAddress == nil {
		return errNullAddress(c, "shipping")
	}

	c.shippingMethod = &snapshot
	return nil
}

// AttachPayment records the payment intent reference returned by the gateway.
func (c *Checkout) AttachPayment(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentId")
	}
	c.paymentID = paymentID
	return nil
}

// EnsureReadyForCompletion verifies everything completion needs: a payment
// intent, a billing address, and, when shipping is required, a shipping
// address and a selected method. The error names the missing piece.
func (c *Checkout) EnsureReadyForCompletion() error {
	switch {
	case !c.HasPayment():
		return errMissingDetails(c, "payment")
	case c.billingAddress == nil:
		return errMissingDetails(c, "billing address")
	case c.shippingRequired && c.shippingAddress == nil:
		return errMissingDetails(c, "shipping address")
	case c.shippingRequired && c.shippingMethod == nil:
		return errMissingDetails(c, "shipping method")
	}
	return nil
}

func (c *Checkout) ensureShippingRequired() error {
	if !c.shippingRequired {
		return errs.NewBusinessRuleViolationError(
			"CHECKOUT_NO_SHIPPING_REQUIRED",
			"checkout %s contains no physical goods", c.id,
		)
	}
	return nil
}

func errNullAddress(c *Checkout, which string) error {
	return errs.NewBusinessRuleViolationError(
		"CHECKOUT_NULL_ADDRESS",
		"checkout %s has no %s address", c.id, which,
	)
}

func errMissingDetails(c *Checkout, missing string) error {
	return errs.NewBusinessRuleViolationError(
		"CHECKOUT_MISSING_DETAILS",
		"checkout %s is missing %s", c.id, missing,
	)
}

func (c *Checkout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Checkout) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *Checkout) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Checkout) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	shippingRequired := false
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if line.physical {
			shippingRequired = true
		}
	}

	c.lines = append([]*Line(nil), lines...)
	c.shippingRequired = shippingRequired
	return nil
}
