package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceFormat renders amounts with two fraction digits and grouped thousands.
type PriceFormat struct {
	GroupSeparator   string
	DecimalSeparator string
}

var (
	// RussianPriceFormat groups with a no-break space: 1 234,50.
	RussianPriceFormat = PriceFormat{GroupSeparator: "\u00a0", DecimalSeparator: ","}
	EnglishPriceFormat = PriceFormat{GroupSeparator: ",", DecimalSeparator: "."}
)

// ParseAmount reads a catalog price. Empty input is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", ErrInvalidField, s)
	}
	return d, nil
}

// Format rounds the amount as a float64 to two places, so ties follow the
// binary value: 0.125 becomes 0.12 and 2.675 becomes 2.67.
func (f PriceFormat) Format(amount decimal.Decimal) string {
	fixed := strconv.FormatFloat(amount.InexactFloat64(), 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + groupDigits(intPart, f.GroupSeparator) + f.DecimalSeparator + fracPart
}

// FormatText parses and formats in one step.
func (f PriceFormat) FormatText(t Text) (string, error) {
	amount, err := ParseAmount(t.String())
	if err != nil {
		return "", err
	}
	return f.Format(amount), nil
}

func groupDigits(digits string, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
