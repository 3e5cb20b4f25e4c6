package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusOf_Boundaries(t *testing.T) {
	require.Equal(t, StockZero, StatusOf(0))
	require.Equal(t, StockLow, StatusOf(1))
	require.Equal(t, StockLow, StatusOf(9))
	require.Equal(t, StockHealthy, StatusOf(10))
	require.Equal(t, StockHealthy, StatusOf(11))
}

func TestLowStockCount_IncludesZeroStock(t *testing.T) {
	items := []Item{
		{ID: "ITM100", Name: "a", Quantity: 0},
		{ID: "ITM101", Name: "b", Quantity: 9},
		{ID: "ITM102", Name: "c", Quantity: 10},
		{ID: "ITM103", Name: "d", Quantity: 45},
	}
	// StatusOf keeps ZERO apart from LOW, but the restock count takes both.
	require.Equal(t, 2, LowStockCount(items))
}

func TestTotals(t *testing.T) {
	items := []Item{
		{ID: "ITM100", UnitPrice: 1250, Quantity: 5, InitialQuantity: 10},
		{ID: "ITM101", UnitPrice: 250.50, Quantity: 45, InitialQuantity: 45},
		{ID: "ITM102", UnitPrice: 80, Quantity: 0, InitialQuantity: 10},
	}
	require.InDelta(t, 6250+11272.5, TotalCurrentValue(items), 1e-9)
	require.InDelta(t, 12500+11272.5+800, TotalInvestment(items), 1e-9)
	require.Equal(t, 0.0, TotalCurrentValue(nil))
}

func TestFormatINR(t *testing.T) {
	require.Equal(t, "₹0.00", FormatINR(0))
	require.Equal(t, "₹45.00", FormatINR(45))
	require.Equal(t, "₹1,250.00", FormatINR(1250))
	require.Equal(t, "₹35,000.00", FormatINR(35000))
	require.Equal(t, "₹1,00,000.00", FormatINR(100000))
}
