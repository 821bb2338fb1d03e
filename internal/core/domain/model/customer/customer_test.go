package customer_test

import (
	"strings"
	"testing"

	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with trimmed fields", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "  Anna Schmidt ", " 0171 123456 ", true, " prefers Friday ")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Anna Schmidt", c.Name())
		assert.Equal(t, "0171 123456", c.Phone())
		assert.True(t, c.IsActive())
		assert.Equal(t, "prefers Friday", c.Notes())
	})

	t.Run("should require a name", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "   ", "", true, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should reject overlong name and phone together", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), strings.Repeat("a", 121), strings.Repeat("1", 41), true, "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "name length")
		assert.Contains(t, err.Error(), "phone length")
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "Anna", "", true, "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestCustomer_Edit(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Anna", "1", true, "")
	require.NoError(t, err)

	t.Run("should replace fields", func(t *testing.T) {
		require.NoError(t, c.Edit("Anna S.", "2", false, "moved"))

		assert.Equal(t, "Anna S.", c.Name())
		assert.Equal(t, "2", c.Phone())
		assert.False(t, c.IsActive())
		assert.Equal(t, "moved", c.Notes())
	})

	t.Run("should keep state on invalid edit", func(t *testing.T) {
		require.Error(t, c.Edit("", "3", true, ""))

		assert.Equal(t, "Anna S.", c.Name())
		assert.Equal(t, "2", c.Phone())
	})
}

func TestCustomer_Validate_ZeroValue(t *testing.T) {
	var c *customer.Customer
	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)

	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}
