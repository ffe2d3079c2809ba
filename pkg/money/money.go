// Package money normalizes loosely formatted currency and percentage input
// coming from the loan application forms, and formats amounts for display.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseMoney keeps only digits and '.' from raw and parses the rest.
// Empty or unparsable input yields 0; the result is never negative.
func ParseMoney(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatMoney renders amount as "$1,234.56" using English separators.
func FormatMoney(amount float64, decimals int) string {
	return FormatMoneyLocale(language.English, amount, decimals)
}

// FormatMoneyLocale renders amount with the group and decimal separators of tag.
// Negative amounts get a leading "-" before the "$".
func FormatMoneyLocale(tag language.Tag, amount float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(tag)
	return sign + "$" + p.Sprintf(fmt.Sprintf("%%.%df", decimals), amount)
}

// ParsePercent strips '%' and ',' and parses the remainder; failures yield 0.
// The value is not bounded, see ClampPercent.
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(strings.NewReplacer("%", "", ",", "").Replace(raw))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampPercent bounds p to [0, 100].
func ClampPercent(p float64) float64 {
	return math.Min(100, math.Max(0, p))
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
