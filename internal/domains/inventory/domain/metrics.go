package domain

// LowStockThreshold is the quantity below which an item needs restocking.
const LowStockThreshold = 10

// StockStatus classifies an item's on-hand quantity for alerting.
type StockStatus string

const (
	StockZero    StockStatus = "ZERO"
	StockLow     StockStatus = "LOW"
	StockHealthy StockStatus = "HEALTHY"
)

// StatusOf classifies a quantity. Zero is its own bucket; anything
// between zero and the threshold is low.
func StatusOf(quantity int) StockStatus {
	switch {
	case quantity == 0:
		return StockZero
	case quantity < LowStockThreshold:
		return StockLow
	default:
		return StockHealthy
	}
}

// TotalCurrentValue sums the on-hand valuation of every item.
func TotalCurrentValue(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.CurrentValue()
	}
	return total
}

// TotalInvestment sums the cumulative purchase basis of every item.
func TotalInvestment(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.InitialInvestment()
	}
	return total
}

// LowStockCount counts items below the threshold. Zero-quantity items
// are included even though StatusOf classifies them as ZERO rather
// than LOW; the restocking alert has always counted them.
func LowStockCount(items []Item) int {
	count := 0
	for _, item := range items {
		if item.Quantity < LowStockThreshold {
			count++
		}
	}
	return count
}
