package types

import "github.com/labops/labstock/internal/domains/inventory/domain"

// CreateItemInput carries the raw field strings exactly as the form
// submitted them; parsing and validation happen in the service.
type CreateItemInput struct {
	Name     string
	Price    string
	Quantity string
}

// UpdateItemInput edits name and price of an existing item. Quantity is
// not part of the edit flow: the current value is reused unchanged.
type UpdateItemInput struct {
	ID    string
	Name  string
	Price string
}

// AdjustQuantityInput moves stock by exactly one unit in either direction.
type AdjustQuantityInput struct {
	ID    string
	Delta int
}

// ItemIdentifier addresses a single item.
type ItemIdentifier struct {
	ID string
}

// ItemView is the read snapshot handed to presentation layers. No
// mutable reference to the registry's item escapes.
type ItemView struct {
	ID                string
	Name              string
	UnitPrice         float64
	UnitPriceDisplay  string
	Quantity          int
	InitialQuantity   int
	Status            domain.StockStatus
	CurrentValue      float64
	CurrentValueText  string
	InitialInvestment float64
}

// AdjustResult reports the post-adjustment item plus an optional
// warning for refused decrements.
type AdjustResult struct {
	Item    ItemView
	Warning string
}

// MetricsView aggregates the derived valuation and alerting figures.
type MetricsView struct {
	ItemCount             int
	TotalCurrentValue     float64
	TotalCurrentValueText string
	TotalInvestment       float64
	TotalInvestmentText   string
	LowStockCount         int
	Alert                 string
}

// NewItemView projects a domain item into its read snapshot.
func NewItemView(item domain.Item) ItemView {
	return ItemView{
		ID:                item.ID,
		Name:              item.Name,
		UnitPrice:         item.UnitPrice,
		UnitPriceDisplay:  domain.FormatINR(item.UnitPrice),
		Quantity:          item.Quantity,
		InitialQuantity:   item.InitialQuantity,
		Status:            domain.StatusOf(item.Quantity),
		CurrentValue:      item.CurrentValue(),
		CurrentValueText:  domain.FormatINR(item.CurrentValue()),
		InitialInvestment: item.InitialInvestment(),
	}
}

// NewItemViewList projects a snapshot slice in order.
func NewItemViewList(items []domain.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, NewItemView(item))
	}
	return views
}
