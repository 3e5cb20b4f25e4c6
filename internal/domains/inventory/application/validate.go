package application

import (
	"math"
	"strconv"
	"strings"

	"github.com/labops/labstock/internal/shared/validation"
)

// Item entry rule messages, surfaced verbatim and in rule order.
const (
	msgNameTooShort     = "Item Name must be at least 3 characters."
	msgPriceNotPositive = "Unit Price must be a positive number."
	msgQuantityNegative = "Quantity must be zero or a positive integer."
)

// parseDecimal converts a raw price field, returning a ParseError for
// anything strconv cannot read.
func parseDecimal(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	return value, nil
}

// parseCount converts a raw quantity field to an integer.
func parseCount(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Field: field, Raw: raw}
	}
	return value, nil
}

// validateItemEntry runs the item form rule set. The quantity rule is
// skipped in edit mode, where the field is locked in the UI and the
// stored quantity is reused.
func validateItemEntry(name string, price float64, quantity int, editMode bool) *ValidationError {
	var v validation.Violations
	v.AddWhen(len(name) < 3, msgNameTooShort)
	v.AddWhen(price <= 0, msgPriceNotPositive)
	if !editMode {
		v.AddWhen(quantity < 0, msgQuantityNegative)
	}
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}
