package finprim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned when a rate cannot be parsed.
var ErrInvalidRate = errors.New("invalid rate")

var hundred = decimal.NewFromInt(100)

// ParseRate parses a rate per period.
//
// It accepts a plain decimal ("0.05"), a percentage ("5%") and a periodic
// split of an annual rate ("6%/12" is 0.005), like the spreadsheet idiom
// FV(0.06/12, ...).
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	num, den, split := strings.Cut(s, "/")

	rate, err := parsePercent(num)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q: %w", ErrInvalidRate, s, err)
	}
	if !split {
		return rate, nil
	}

	periods, err := decimal.NewFromString(strings.TrimSpace(den))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q: %w", ErrInvalidRate, s, err)
	}
	if periods.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w %q: zero periods", ErrInvalidRate, s)
	}
	return rate.Div(periods), nil
}

// parsePercent parses "5%" as 0.05, and anything else as a plain decimal.
func parsePercent(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return decimal.Decimal{}, err
		}
		return v.Div(hundred), nil
	}
	return decimal.NewFromString(s)
}

// FormatRate returns the rate as a percentage, like "5.00%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}
