package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceItems(t *testing.T) {
	items := []OrderItem{
		{Name: "Pizza familiar", Price: decimal.NewFromInt(100)},
		{Name: "Refresco 2L", Price: decimal.NewFromInt(50)},
	}

	subtotal, tax, total := PriceItems(items, decimal.NewFromInt(18))
	assert.Equal(t, "150.00", subtotal.StringFixed(2))
	assert.Equal(t, "27.00", tax.StringFixed(2))
	assert.Equal(t, "177.00", total.StringFixed(2))
}

func TestPriceItems_ZeroRate(t *testing.T) {
	items := []OrderItem{{Price: decimal.RequireFromString("99.99")}}

	subtotal, tax, total := PriceItems(items, decimal.Zero)
	assert.True(t, tax.IsZero())
	assert.True(t, total.Equal(subtotal))
}

func TestPriceItems_RoundsTaxToCents(t *testing.T) {
	items := []OrderItem{{Price: decimal.RequireFromString("10.01")}}

	// 10.01 * 18% = 1.8018, rounded to 1.80.
	subtotal, tax, total := PriceItems(items, decimal.NewFromInt(18))
	assert.Equal(t, "1.80", tax.StringFixed(2))
	assert.True(t, total.Equal(subtotal.Add(tax)))
}

func TestPriceItems_Empty(t *testing.T) {
	subtotal, tax, total := PriceItems(nil, decimal.NewFromInt(18))
	assert.True(t, subtotal.IsZero())
	assert.True(t, tax.IsZero())
	assert.True(t, total.IsZero())
}

func TestComputeTax(t *testing.T) {
	tax := ComputeTax(decimal.NewFromInt(150), decimal.NewFromInt(18))
	assert.Equal(t, "27.00", tax.StringFixed(2))
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusInProgress.IsValid())
	assert.True(t, OrderStatusCompleted.IsValid())
	assert.False(t, OrderStatus("cancelled").IsValid())
}
