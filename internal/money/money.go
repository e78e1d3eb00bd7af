// Package money provides rounding, parsing and display formatting for
// monetary amounts entered by or shown to the cashier.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseAmount converts free-form numeric input into a non-negative amount.
// Empty input coerces to 0; thousands separators and stray currency text
// are tolerated; negative input clamps to 0 at this boundary.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.ContainsRune(s, '-') {
		return 0
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Format renders an amount for table display with grouping separators.
func Format(v float64) string {
	return printer.Sprintf("%.2f", v)
}
