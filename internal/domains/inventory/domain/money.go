package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the fixed display currency. There is no conversion.
const CurrencySymbol = "₹"

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a value with the fixed currency symbol, en-IN digit
// grouping, and exactly two fraction digits.
func FormatINR(value float64) string {
	return inrPrinter.Sprintf("%s%v", CurrencySymbol,
		number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
