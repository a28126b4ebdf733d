package order_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 2,
			decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, item.ProductID.IsEqual(productID))
		assert.Equal(t, "Espresso beans 1kg", item.Name)
		assert.Equal(t, "SKU-001", item.SKU)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("should derive amounts from pricing inputs", func(t *testing.T) {
		// 2 × 10 = 20, discount 10% = 2, tax 5% of 18 = 0.9, total 18.9
		item, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 2,
			decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(20)))
		assert.True(t, item.DiscountAmount.Equal(decimal.NewFromInt(2)))
		assert.True(t, item.TaxAmount.Equal(decimal.RequireFromString("0.9")))
		assert.True(t, item.Total.Equal(decimal.RequireFromString("18.9")))
	})

	t.Run("should round each derived amount to two decimal places", func(t *testing.T) {
		// 3 × 1.333 = 3.999 -> 4.00, discount 7% = 0.28, tax 19% of 3.72 = 0.7068 -> 0.71
		item, err := order.NewItem(
			productID, "Paper cups", "SKU-002", 3,
			decimal.RequireFromString("1.333"), decimal.NewFromInt(7), decimal.NewFromInt(19))

		require.NoError(t, err)
		assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("4.00")), "subtotal %s", item.Subtotal)
		assert.True(t, item.DiscountAmount.Equal(decimal.RequireFromString("0.28")), "discount %s", item.DiscountAmount)
		assert.True(t, item.TaxAmount.Equal(decimal.RequireFromString("0.71")), "tax %s", item.TaxAmount)
		assert.True(t, item.Total.Equal(decimal.RequireFromString("4.43")), "total %s", item.Total)
	})

	t.Run("should allow zero discount and zero tax", func(t *testing.T) {
		item, err := order.NewItem(
			productID, "Napkins", "", 1,
			decimal.NewFromInt(3), decimal.Zero, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.Total.Equal(decimal.NewFromInt(3)))
	})

	t.Run("should allow hundred percent discount", func(t *testing.T) {
		item, err := order.NewItem(
			productID, "Promo sticker", "", 1,
			decimal.NewFromInt(5), decimal.NewFromInt(100), decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.True(t, item.DiscountAmount.Equal(decimal.NewFromInt(5)))
		assert.True(t, item.Total.Equal(decimal.Zero))
	})

	t.Run("should fail with unconstructed product ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(
			invalidID, "Espresso beans 1kg", "SKU-001", 1,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero)

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "", "SKU-001", 1,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 0,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", -3,
			decimal.NewFromInt(10), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 1,
			decimal.NewFromInt(-10), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "unit price")
	})

	t.Run("should fail with discount percent above hundred", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 1,
			decimal.NewFromInt(10), decimal.NewFromInt(101), decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative discount percent", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 1,
			decimal.NewFromInt(10), decimal.NewFromInt(-1), decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative tax percent", func(t *testing.T) {
		_, err := order.NewItem(
			productID, "Espresso beans 1kg", "SKU-001", 1,
			decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(-5))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "tax percent")
	})
}

func TestCalculateTotals(t *testing.T) {
	productID := kernel.NewUUID()

	mustItem := func(quantity int, unitPrice, discountPercent, taxPercent string) order.Item {
		item, err := order.NewItem(
			productID, "Line item", "", quantity,
			decimal.RequireFromString(unitPrice),
			decimal.RequireFromString(discountPercent),
			decimal.RequireFromString(taxPercent))
		require.NoError(t, err)
		return item
	}

	t.Run("should return zero totals for no items", func(t *testing.T) {
		totals := order.CalculateTotals(nil)

		assert.True(t, totals.Subtotal.Equal(decimal.Zero))
		assert.True(t, totals.DiscountAmount.Equal(decimal.Zero))
		assert.True(t, totals.TaxAmount.Equal(decimal.Zero))
		assert.True(t, totals.TotalAmount.Equal(decimal.Zero))
	})

	t.Run("should sum derived amounts across items", func(t *testing.T) {
		items := []order.Item{
			mustItem(2, "10", "10", "5"), // 20 − 2 + 0.9 = 18.9
			mustItem(1, "8", "0", "5"),   // 8 + 0.4 = 8.4
		}

		totals := order.CalculateTotals(items)

		assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(28)), "subtotal %s", totals.Subtotal)
		assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(2)), "discount %s", totals.DiscountAmount)
		assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("1.3")), "tax %s", totals.TaxAmount)
		assert.True(t, totals.TotalAmount.Equal(decimal.RequireFromString("27.3")), "total %s", totals.TotalAmount)
	})

	t.Run("should equal the sum of item totals", func(t *testing.T) {
		items := []order.Item{
			mustItem(3, "1.333", "7", "19"),
			mustItem(5, "2.499", "12.5", "19"),
			mustItem(1, "99.99", "0", "7"),
		}

		totals := order.CalculateTotals(items)

		sum := decimal.Zero
		for _, item := range items {
			sum = sum.Add(item.Total)
		}
		assert.True(t, totals.TotalAmount.Equal(sum), "want %s, got %s", sum, totals.TotalAmount)
	})

	t.Run("should not mutate the input items", func(t *testing.T) {
		item := mustItem(2, "10", "10", "5")
		before := item

		_ = order.CalculateTotals([]order.Item{item})

		assert.Equal(t, before, item)
	})
}
