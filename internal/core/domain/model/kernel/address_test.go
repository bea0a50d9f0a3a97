package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with optional fields empty", func(t *testing.T) {
		address, err := kernel.NewAddress("", "1 Main St", "", "Springfield", "12345", "US")
		require.NoError(t, err)

		assert.Empty(t, address.FullName())
		assert.Equal(t, "1 Main St", address.Line1())
		assert.Equal(t, "US", address.CountryCode())
		assert.NoError(t, address.Validate())
	})

	t.Run("requires line1 city and postal code", func(t *testing.T) {
		_, err := kernel.NewAddress("Avery Stone", "", "", "Springfield", "12345", "US")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.NewAddress("Avery Stone", "1 Main St", "", "", "12345", "US")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "", "US")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("country code must be two letters", func(t *testing.T) {
		_, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "USA")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAddress_Patched(t *testing.T) {
	base := func(t *testing.T) kernel.Address {
		t.Helper()
		address, err := kernel.NewAddress("Avery Stone", "1 Main St", "Apt 4", "Springfield", "12345", "US")
		require.NoError(t, err)
		return address
	}

	t.Run("absent fields are left untouched", func(t *testing.T) {
		patched, err := base(t).Patched(kernel.AddressPatch{
			City: kernel.Some("Shelbyville"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Shelbyville", patched.City())
		assert.Equal(t, "1 Main St", patched.Line1())
		assert.Equal(t, "Apt 4", patched.Line2())
	})

	t.Run("null clears optional fields", func(t *testing.T) {
		patched, err := base(t).Patched(kernel.AddressPatch{
			FullName: kernel.Null[string](),
			Line2:    kernel.Null[string](),
		})
		require.NoError(t, err)

		assert.Empty(t, patched.FullName())
		assert.Empty(t, patched.Line2())
	})

	t.Run("cannot clear a required field", func(t *testing.T) {
		_, err := base(t).Patched(kernel.AddressPatch{
			City: kernel.Null[string](),
		})
		assert.Error(t, err)
	})

	t.Run("original is unchanged", func(t *testing.T) {
		original := base(t)
		_, err := original.Patched(kernel.AddressPatch{City: kernel.Some("Shelbyville")})
		require.NoError(t, err)

		assert.Equal(t, "Springfield", original.City())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	first, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	second, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	different, err := kernel.NewAddress("Avery Stone", "2 Oak Ave", "", "Springfield", "12345", "US")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(different))
}
