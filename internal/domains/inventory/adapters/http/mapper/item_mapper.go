// Package mapper translates between transport payloads and the
// inventory application types.
package mapper

import (
	invtypes "github.com/labops/labstock/internal/domains/inventory/application/types"
)

// ItemForm carries the raw field strings of the item entry form; the
// service parses and validates them.
type ItemForm struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// Item is the transport representation of an item snapshot.
type Item struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	UnitPrice         float64 `json:"unitPrice"`
	UnitPriceDisplay  string  `json:"unitPriceDisplay"`
	Quantity          int     `json:"quantity"`
	InitialQuantity   int     `json:"initialQuantity"`
	Status            string  `json:"status"`
	CurrentValue      float64 `json:"currentValue"`
	CurrentValueText  string  `json:"currentValueDisplay"`
	InitialInvestment float64 `json:"initialInvestment"`
}

// Adjustment reports the post-adjustment item plus an optional warning.
type Adjustment struct {
	Item    Item   `json:"item"`
	Warning string `json:"warning,omitempty"`
}

// Metrics is the transport representation of the dashboard figures.
type Metrics struct {
	ItemCount             int     `json:"itemCount"`
	TotalCurrentValue     float64 `json:"totalCurrentValue"`
	TotalCurrentValueText string  `json:"totalCurrentValueDisplay"`
	TotalInvestment       float64 `json:"totalInvestment"`
	TotalInvestmentText   string  `json:"totalInvestmentDisplay"`
	LowStockCount         int     `json:"lowStockCount"`
	Alert                 string  `json:"alert"`
}

// ToCreateInput maps the entry form onto the create use case.
func ToCreateInput(form ItemForm) invtypes.CreateItemInput {
	return invtypes.CreateItemInput{
		Name:     form.Name,
		Price:    form.Price,
		Quantity: form.Quantity,
	}
}

// ToUpdateInput maps the edit form onto the update use case. The
// quantity field is ignored: edit mode reuses the stored quantity.
func ToUpdateInput(id string, form ItemForm) invtypes.UpdateItemInput {
	return invtypes.UpdateItemInput{
		ID:    id,
		Name:  form.Name,
		Price: form.Price,
	}
}

// FromView maps an item snapshot to transport.
func FromView(view invtypes.ItemView) Item {
	return Item{
		ID:                view.ID,
		Name:              view.Name,
		UnitPrice:         view.UnitPrice,
		UnitPriceDisplay:  view.UnitPriceDisplay,
		Quantity:          view.Quantity,
		InitialQuantity:   view.InitialQuantity,
		Status:            string(view.Status),
		CurrentValue:      view.CurrentValue,
		CurrentValueText:  view.CurrentValueText,
		InitialInvestment: view.InitialInvestment,
	}
}

// FromViewList maps a snapshot slice in order.
func FromViewList(views []invtypes.ItemView) []Item {
	items := make([]Item, 0, len(views))
	for _, view := range views {
		items = append(items, FromView(view))
	}
	return items
}

// FromAdjustResult maps an adjustment outcome to transport.
func FromAdjustResult(result *invtypes.AdjustResult) Adjustment {
	if result == nil {
		return Adjustment{}
	}
	return Adjustment{Item: FromView(result.Item), Warning: result.Warning}
}

// FromMetrics maps the metrics view to transport.
func FromMetrics(view *invtypes.MetricsView) Metrics {
	if view == nil {
		return Metrics{}
	}
	return Metrics{
		ItemCount:             view.ItemCount,
		TotalCurrentValue:     view.TotalCurrentValue,
		TotalCurrentValueText: view.TotalCurrentValueText,
		TotalInvestment:       view.TotalInvestment,
		TotalInvestmentText:   view.TotalInvestmentText,
		LowStockCount:         view.LowStockCount,
		Alert:                 view.Alert,
	}
}
