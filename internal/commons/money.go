package commons

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary amount for display, e.g. "R$ 1500.50".
// Amounts are always shown with two fixed decimal places.
func FormatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + " " + amount.StringFixed(2)
}
