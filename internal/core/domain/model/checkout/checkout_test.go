package checkout_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	return address
}

func testSnapshot(t *testing.T) shipping.MethodSnapshot {
	t.Helper()
	snapshot, err := shipping.NewMethodSnapshot(kernel.NewUUID(), "Standard", decimal.NewFromInt(5))
	require.NoError(t, err)
	return snapshot
}

func physicalLine(t *testing.T, quantity int, unitPrice int64, massGrams int) *checkout.Line {
	t.Helper()
	line, err := checkout.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), quantity, decimal.NewFromInt(unitPrice), massGrams, true)
	require.NoError(t, err)
	return line
}

func digitalLine(t *testing.T, quantity int, unitPrice int64) *checkout.Line {
	t.Helper()
	line, err := checkout.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), quantity, decimal.NewFromInt(unitPrice), 0, false)
	require.NoError(t, err)
	return line
}

func newTestCheckout(t *testing.T, lines ...*checkout.Line) *checkout.Checkout {
	t.Helper()
	aggregate, err := checkout.NewCheckout(
		kernel.NewUUID(), kernel.NewUUID(), "avery@example.com", "203.0.113.10",
		lines, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func assertRuleCode(t *testing.T, err error, code string) {
	t.Helper()
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, code, ruleErr.Code)
}

func TestNewCheckout(t *testing.T) {
	t.Run("derives shipping required from the lines", func(t *testing.T) {
		mixed := newTestCheckout(t, physicalLine(t, 1, 10, 500), digitalLine(t, 1, 5))
		assert.True(t, mixed.ShippingRequired())

		digital := newTestCheckout(t, digitalLine(t, 2, 5))
		assert.False(t, digital.ShippingRequired())
	})

	t.Run("requires email and at least one line", func(t *testing.T) {
		_, err := checkout.NewCheckout(
			kernel.NewUUID(), kernel.NewUUID(), "", "203.0.113.10",
			[]*checkout.Line{digitalLine(t, 1, 5)}, time.Now().UTC())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = checkout.NewCheckout(
			kernel.NewUUID(), kernel.NewUUID(), "avery@example.com", "203.0.113.10",
			nil, time.Now().UTC())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCheckout_Totals(t *testing.T) {
	aggregate := newTestCheckout(t, physicalLine(t, 2, 10, 500), digitalLine(t, 3, 5))

	t.Run("items total sums line subtotals", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(35).Equal(aggregate.ItemsTotal()))
	})

	t.Run("mass counts physical lines only", func(t *testing.T) {
		assert.Equal(t, 1000, aggregate.TotalMassGrams())
	})

	t.Run("total includes the selected shipping rate", func(t *testing.T) {
		withShipping := newTestCheckout(t, physicalLine(t, 2, 10, 500))
		require.NoError(t, withShipping.SetShippingAddress(testAddress(t)))
		require.NoError(t, withShipping.SetShippingMethod(testSnapshot(t)))

		assert.True(t, decimal.NewFromInt(25).Equal(withShipping.Total()))
	})

	t.Run("shipment parameter follows the method kind", func(t *testing.T) {
		mass, err := aggregate.ShipmentParameter(shipping.Weight)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1000).Equal(mass))

		price, err := aggregate.ShipmentParameter(shipping.Price)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(35).Equal(price))

		_, err = aggregate.ShipmentParameter(shipping.UnknownKind)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCheckout_Addresses(t *testing.T) {
	t.Run("single address mirrors billing to shipping", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))
		require.NoError(t, aggregate.UseSingleAddress(true))

		address := testAddress(t)
		require.NoError(t, aggregate.SetBillingAddress(address))

		require.NotNil(t, aggregate.ShippingAddress())
		assert.True(t, address.IsEqual(*aggregate.ShippingAddress()))
	})

	t.Run("shipping address operations need a physical line", func(t *testing.T) {
		aggregate := newTestCheckout(t, digitalLine(t, 1, 5))

		err := aggregate.SetShippingAddress(testAddress(t))
		assertRuleCode(t, err, "CHECKOUT_NO_SHIPPING_REQUIRED")
	})

	t.Run("changing the shipping address clears the method", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))
		require.NoError(t, aggregate.SetShippingAddress(testAddress(t)))
		require.NoError(t, aggregate.SetShippingMethod(testSnapshot(t)))

		other, err := kernel.NewAddress("Avery Stone", "2 Oak Ave", "", "Shelbyville", "67890", "US")
		require.NoError(t, err)
		require.NoError(t, aggregate.SetShippingAddress(other))

		assert.Nil(t, aggregate.ShippingMethod())
	})

	t.Run("patch updates the existing address", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))
		require.NoError(t, aggregate.SetBillingAddress(testAddress(t)))

		err := aggregate.UpdateBillingAddress(kernel.AddressPatch{
			City:  kernel.Some("Shelbyville"),
			Line2: kernel.Null[string](),
		})
		require.NoError(t, err)

		assert.Equal(t, "Shelbyville", aggregate.BillingAddress().City())
		assert.Equal(t, "1 Main St", aggregate.BillingAddress().Line1())
	})

	t.Run("patch without an existing address is rejected", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))

		err := aggregate.UpdateBillingAddress(kernel.AddressPatch{City: kernel.Some("Shelbyville")})
		assertRuleCode(t, err, "CHECKOUT_NULL_ADDRESS")
	})

	t.Run("patch cannot clear a required field", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))
		require.NoError(t, aggregate.SetBillingAddress(testAddress(t)))

		err := aggregate.UpdateBillingAddress(kernel.AddressPatch{City: kernel.Null[string]()})
		assert.Error(t, err)
	})
}

func TestCheckout_SetShippingMethod(t *testing.T) {
	t.Run("requires a shipping address first", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))

		err := aggregate.SetShippingMethod(testSnapshot(t))
		assertRuleCode(t, err, "CHECKOUT_NULL_ADDRESS")
	})

	t.Run("rejected for digital only checkouts", func(t *testing.T) {
		aggregate := newTestCheckout(t, digitalLine(t, 1, 5))

		err := aggregate.SetShippingMethod(testSnapshot(t))
		assertRuleCode(t, err, "CHECKOUT_NO_SHIPPING_REQUIRED")
	})
}

func TestCheckout_EnsureReadyForCompletion(t *testing.T) {
	t.Run("names each missing piece in order", func(t *testing.T) {
		aggregate := newTestCheckout(t, physicalLine(t, 1, 10, 500))

		assertRuleCode(t, aggregate.EnsureReadyForCompletion(), "CHECKOUT_MISSING_DETAILS")

		require.NoError(t, aggregate.AttachPayment("pi_123"))
		assertRuleCode(t, aggregate.EnsureReadyForCompletion(), "CHECKOUT_MISSING_DETAILS")

		require.NoError(t, aggregate.SetBillingAddress(testAddress(t)))
		assertRuleCode(t, aggregate.EnsureReadyForCompletion(), "CHECKOUT_MISSING_DETAILS")

		require.NoError(t, aggregate.SetShippingAddress(testAddress(t)))
		assertRuleCode(t, aggregate.EnsureReadyForCompletion(), "CHECKOUT_MISSING_DETAILS")

		require.NoError(t, aggregate.SetShippingMethod(testSnapshot(t)))
		assert.NoError(t, aggregate.EnsureReadyForCompletion())
	})

	t.Run("digital checkout needs only payment and billing", func(t *testing.T) {
		aggregate := newTestCheckout(t, digitalLine(t, 1, 5))

		require.NoError(t, aggregate.AttachPayment("pi_123"))
		require.NoError(t, aggregate.SetBillingAddress(testAddress(t)))

		assert.NoError(t, aggregate.EnsureReadyForCompletion())
	})

	t.Run("attach payment rejects an empty reference", func(t *testing.T) {
		aggregate := newTestCheckout(t, digitalLine(t, 1, 5))

		assert.ErrorIs(t, aggregate.AttachPayment(""), errs.ErrValueIsRequired)
	})
}

func TestRestoreCheckout(t *testing.T) {
	t.Run("round trips addresses method and flags", func(t *testing.T) {
		address := testAddress(t)
		snapshot := testSnapshot(t)
		createdAt := time.Now().UTC().Truncate(time.Second)

		aggregate, err := checkout.RestoreCheckout(
			kernel.NewUUID(), kernel.NewUUID(), "avery@example.com", "203.0.113.10",
			[]*checkout.Line{physicalLine(t, 1, 10, 500)},
			&address, &address, &snapshot, "pi_123",
			true, true, false, createdAt)
		require.NoError(t, err)

		assert.True(t, aggregate.UsesSingleAddress())
		assert.True(t, aggregate.SaveCustomerAddresses())
		assert.False(t, aggregate.SavePaymentMethodAsDefault())
		assert.Equal(t, "pi_123", aggregate.PaymentID())
		assert.Equal(t, createdAt, aggregate.CreatedAt())
		require.NotNil(t, aggregate.ShippingMethod())
		assert.Equal(t, snapshot.MethodID(), aggregate.ShippingMethod().MethodID())
		assert.NoError(t, aggregate.EnsureReadyForCompletion())
	})
}

func TestLine(t *testing.T) {
	t.Run("subtotal multiplies quantity and unit price", func(t *testing.T) {
		line := physicalLine(t, 3, 7, 100)
		assert.True(t, decimal.NewFromInt(21).Equal(line.Subtotal()))
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		_, err := checkout.NewLine(
			kernel.NewUUID(), kernel.NewUUID(), 0, decimal.NewFromInt(10), 100, true)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative price and mass", func(t *testing.T) {
		_, err := checkout.NewLine(
			kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(-1), 100, true)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = checkout.NewLine(
			kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(1), -1, true)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
