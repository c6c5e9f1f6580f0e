package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKUSD formata um valor em milhares de dólares como "$1,234K".
func FormatKUSD(d decimal.Decimal) string {
	return "$" + FormatThousands(d) + "K"
}

// FormatThousands rounds to an integer and adds thousands separators.
func FormatThousands(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
