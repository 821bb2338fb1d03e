package order_test

import (
	"testing"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"
	"meatmanager/internal/core/domain/model/product"
	"meatmanager/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newProduct(t *testing.T, name, sell, buy string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "kg", dec(sell), dec(buy), true)
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), order.SourceCall, "", time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	roundID := kernel.NewUUID()
	createdAt := time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC)

	t.Run("should create empty unpaid order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, roundID, order.SourceWhatsApp, " bitte dünn ", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RoundID().IsEqual(roundID))
		assert.Equal(t, order.SourceWhatsApp, o.Source())
		assert.Equal(t, "bitte dünn", o.Comment())
		assert.False(t, o.IsPaid())
		assert.False(t, o.IsPickedUp())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.IsEmpty())
	})

	t.Run("should reject zero ids and unknown source", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, roundID, order.Source("fax"), "", createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_SetQuantity(t *testing.T) {
	t.Run("positive quantity creates line with price snapshot", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")

		require.NoError(t, o.SetQuantity(p, dec("1.5")))

		item, ok := o.Item(p.ID())
		require.True(t, ok)
		assert.True(t, dec("1.5").Equal(item.Quantity()))
		assert.True(t, dec("12.90").Equal(item.SellPrice()))
		assert.True(t, dec("8.40").Equal(item.BuyPrice()))
		assert.True(t, item.ProductID().IsEqual(p.ID()))
		assert.False(t, o.IsEmpty())
	})

	t.Run("zero or negative quantity on absent line is a no-op", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")

		require.NoError(t, o.SetQuantity(p, decimal.Zero))
		require.NoError(t, o.SetQuantity(p, dec("-2")))

		assert.True(t, o.IsEmpty())
	})

	t.Run("zero quantity removes existing line", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")
		other := newProduct(t, "Bratwurst", "9.00", "6.00")
		require.NoError(t, o.SetQuantity(p, dec("1")))
		require.NoError(t, o.SetQuantity(other, dec("2")))

		require.NoError(t, o.SetQuantity(p, decimal.Zero))

		_, ok := o.Item(p.ID())
		assert.False(t, ok)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("quantity edit keeps the frozen prices", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")
		require.NoError(t, o.SetQuantity(p, dec("1")))
		original, _ := o.Item(p.ID())
		originalID := original.ID()

		require.NoError(t, p.Edit("Rinderhack", "kg", dec("15.00"), dec("10.00"), true))
		require.NoError(t, o.SetQuantity(p, dec("3")))

		item, ok := o.Item(p.ID())
		require.True(t, ok)
		assert.True(t, item.ID().IsEqual(originalID))
		assert.True(t, dec("3").Equal(item.Quantity()))
		assert.True(t, dec("12.90").Equal(item.SellPrice()))
		assert.True(t, dec("8.40").Equal(item.BuyPrice()))
	})

	t.Run("re-adding a removed product takes current prices", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")
		require.NoError(t, o.SetQuantity(p, dec("1")))
		require.NoError(t, o.SetQuantity(p, decimal.Zero))
		require.NoError(t, p.Edit("Rinderhack", "kg", dec("15.00"), dec("10.00"), true))

		require.NoError(t, o.SetQuantity(p, dec("1")))

		item, _ := o.Item(p.ID())
		assert.True(t, dec("15.00").Equal(item.SellPrice()))
	})

	t.Run("quantity rounding to zero removes the line", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "12.90", "8.40")
		require.NoError(t, o.SetQuantity(p, dec("1")))

		require.NoError(t, o.SetQuantity(p, dec("0.001")))

		assert.True(t, o.IsEmpty())
	})

	t.Run("unconstructed product is rejected", func(t *testing.T) {
		o := newOrder(t)

		err := o.SetQuantity(&product.Product{}, dec("1"))

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})

	t.Run("should reject quantities beyond the storage limit", func(t *testing.T) {
		o := newOrder(t)
		p := newProduct(t, "Rinderhack", "5.00", "3.00")

		require.NoError(t, o.SetQuantity(p, dec("999999.99")))
		err := o.SetQuantity(p, dec("1000000"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		item, ok := o.Item(p.ID())
		require.True(t, ok)
		assert.Equal(t, "999999.99", item.Quantity().String())

		err = o.SetQuantity(newProduct(t, "Bratwurst", "1.00", "0.50"), dec("99999999"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_StatusFlags(t *testing.T) {
	o := newOrder(t)

	o.MarkPaid()
	o.MarkPaid()
	o.MarkPickedUp()

	assert.True(t, o.IsPaid())
	assert.True(t, o.IsPickedUp())
}

func TestOrder_ChangeDetails(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.ChangeDetails(order.SourceSelf, "  holt selbst  "))
	assert.Equal(t, order.SourceSelf, o.Source())
	assert.Equal(t, "holt selbst", o.Comment())

	require.Error(t, o.ChangeDetails(order.Source("mail"), "x"))
	assert.Equal(t, order.SourceSelf, o.Source())
	assert.Equal(t, "holt selbst", o.Comment())
}

func TestRestoreOrder(t *testing.T) {
	productID := kernel.NewUUID()
	item, err := order.RestoreItem(kernel.NewUUID(), productID, dec("2"), dec("5.00"), dec("3.00"))
	require.NoError(t, err)

	t.Run("should restore items and flags", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.SourceCall, "", true, true, time.Now(), []*order.Item{item})

		require.NoError(t, err)
		assert.True(t, o.IsPaid())
		assert.True(t, o.IsPickedUp())
		restored, ok := o.Item(productID)
		require.True(t, ok)
		assert.True(t, dec("5.00").Equal(restored.SellPrice()))
	})

	t.Run("should reject two lines for one product", func(t *testing.T) {
		dup, err := order.RestoreItem(kernel.NewUUID(), productID, dec("1"), dec("5.00"), dec("3.00"))
		require.NoError(t, err)

		_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.SourceCall, "", false, false, time.Now(), []*order.Item{item, dup})

		require.ErrorIs(t, err, order.ErrDuplicateProduct)
	})

	t.Run("should reject non-positive item quantity", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), productID, decimal.Zero, dec("5.00"), dec("3.00"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseSource(t *testing.T) {
	testCases := []struct {
		input    string
		fallback order.Source
		expected order.Source
	}{
		{"", order.DefaultSource, order.SourceCall},
		{"  ", order.SourceSelf, order.SourceSelf},
		{"whatsapp", order.DefaultSource, order.SourceWhatsApp},
		{" Self ", order.DefaultSource, order.SourceSelf},
	}

	for _, tc := range testCases {
		s, err := order.ParseSource(tc.input, tc.fallback)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, s)
	}

	_, err := order.ParseSource("fax", order.DefaultSource)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
