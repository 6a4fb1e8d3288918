package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmountCSV formats a monetary amount for the spreadsheet export:
// two decimal places with a comma decimal separator ("1500,00").
func FormatAmountCSV(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}

// FormatAmountBRL formats a monetary amount for report display with pt-BR
// grouping: thousands separated by '.', decimals by ',' ("12.345,67").
func FormatAmountBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
