package domain

import "github.com/shopspring/decimal"

// FormatUSD форматирует сумму в центах как строку вида "$12.50".
func FormatUSD(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
