package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(" Widget ", 2, decimal.RequireFromString("10.00"), 1.5)

		require.NoError(t, err)
		assert.Equal(t, "Widget", item.ProductName())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, decimal.RequireFromString("20").Equal(item.LineTotal()))
		assert.InDelta(t, 3.0, item.LineWeight().Kilograms(), 1e-9)
	})

	t.Run("largest storable price is allowed", func(t *testing.T) {
		item, err := order.NewItem("Yacht", 1, decimal.RequireFromString("999999999999.99"), 1)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
	})

	t.Run("trailing zeros beyond two decimals are not rounding", func(t *testing.T) {
		item, err := order.NewItem("Widget", 1, decimal.RequireFromString("10.500"), 1)

		require.NoError(t, err)
		assert.Equal(t, "10.50", item.UnitPrice().StringFixed(2))
	})

	t.Run("free weightless item is allowed", func(t *testing.T) {
		_, err := order.NewItem("Voucher", 1, decimal.Zero, 0)

		require.NoError(t, err)
	})

	tests := []struct {
		name     string
		product  string
		quantity int
		price    string
		weight   float64
		param    string
	}{
		{name: "blank product", product: " ", quantity: 1, price: "1", weight: 1, param: "productName"},
		{name: "zero quantity", product: "Widget", quantity: 0, price: "1", weight: 1, param: "quantity"},
		{name: "negative price", product: "Widget", quantity: 1, price: "-0.01", weight: 1, param: "unitPrice"},
		{name: "negative weight", product: "Widget", quantity: 1, price: "1", weight: -1, param: "weight"},
		{name: "price with three decimals", product: "Widget", quantity: 2, price: "10.005", weight: 1, param: "unitPrice"},
		{name: "price beyond storable range", product: "Widget", quantity: 1, price: "1000000000000", weight: 1, param: "unitPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewItem(tt.product, tt.quantity, decimal.RequireFromString(tt.price), tt.weight)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestTotals(t *testing.T) {
	a, err := order.NewItem("Widget", 2, decimal.RequireFromString("10.0"), 1.5)
	require.NoError(t, err)
	b, err := order.NewItem("Gadget", 3, decimal.RequireFromString("0.10"), 0.1)
	require.NoError(t, err)

	price, weight := order.Totals([]order.Item{a, b})

	assert.Equal(t, "20.3", price.String())
	assert.InDelta(t, 3.3, weight.Kilograms(), 1e-9)

	price, weight = order.Totals(nil)
	assert.True(t, price.IsZero())
	assert.Zero(t, weight.Kilograms())
}

func TestItem_ValidateZeroValue(t *testing.T) {
	err := order.Item{}.Validate()

	require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	assert.True(t, errs.IsValidation(err))
}

func TestTotals_MatchRenderedLines(t *testing.T) {
	item, err := order.NewItem("Widget", 2, decimal.RequireFromString("10.01"), 1)
	require.NoError(t, err)

	price, _ := order.Totals([]order.Item{item})
	rendered := item.UnitPrice().StringFixed(2)

	assert.Equal(t, "10.01", rendered)
	assert.Equal(t, "20.02", price.StringFixed(2))
}
