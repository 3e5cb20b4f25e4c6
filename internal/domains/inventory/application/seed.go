package application

import "github.com/labops/labstock/internal/domains/inventory/domain"

// seedItems is the fixed demo dataset written on first run, when the
// snapshot slot has never been persisted.
func seedItems() []domain.Item {
	return []domain.Item{
		{ID: "ITM100", Name: "Oscilloscope Probe", UnitPrice: 1250.00, Quantity: 5, InitialQuantity: 10},
		{ID: "ITM101", Name: "Breadboard (Large)", UnitPrice: 250.50, Quantity: 45, InitialQuantity: 45},
		{ID: "ITM102", Name: "Power Supply Cable", UnitPrice: 80.00, Quantity: 0, InitialQuantity: 10},
		{ID: "ITM103", Name: "LED Pack (100pcs)", UnitPrice: 35.00, Quantity: 7, InitialQuantity: 20},
		{ID: "ITM104", Name: "Digital Storage Oscilloscope", UnitPrice: 35000.00, Quantity: 1, InitialQuantity: 1},
	}
}
