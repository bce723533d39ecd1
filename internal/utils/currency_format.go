package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyGlyph is the glyph prefixed to every formatted statement amount.
const CurrencyGlyph = "€"

// FormatAmount renders a monetary value with the currency glyph and thousands
// separators, e.g. "€1,234,567" or "€1,234.50". Whole amounts carry no
// decimals; fractional amounts are rounded to two places. Negative values
// keep the sign ahead of the glyph-free digits: "€-1,250".
//
// Every render target formats through this single function, which is what
// makes figures byte-identical between the live view and the paginated
// document.
func FormatAmount(d decimal.Decimal) string {
	return CurrencyGlyph + FormatNumber(d)
}

// FormatNumber renders a decimal with comma thousands separators and at most
// two decimal places, without a currency glyph.
func FormatNumber(d decimal.Decimal) string {
	rounded := d.Round(2)
	s := rounded.String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatRate renders a percentage with two fixed decimals, e.g. "20.00".
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2)
}
