package utils

import (
	"strings"

	"github.com/gestor-backend/errs"
	"github.com/shopspring/decimal"
)

// FormatBRL renders a decimal amount as a BRL display string, e.g. "R$ 1.234,56".
// Amounts stay as decimals everywhere else; formatting happens only at the
// response boundary.
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	// Group the integer digits with dot thousands separators
	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	result := "R$ " + grouped.String() + "," + decPart
	if negative {
		return "-" + result
	}
	return result
}

// ParseBRL converts a BRL display string back to a decimal amount.
// Accepts "R$ 1.234,56", "1234,56", "R$1.234" and an empty string (zero).
func ParseBRL(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, nil
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Validation("invalid currency value: " + value)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}
