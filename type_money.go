package finprim

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount of money in the given ISO currency code.
// An empty currency is allowed, the amount is then printed as a plain number.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, nil if the code is empty or unknown.
func (m Money) currency() *money.Currency {
	if m.cur == "" {
		return nil
	}
	return money.GetCurrency(m.cur)
}

// fraction is the number of decimals of the currency, 2 without a known currency.
func (m Money) fraction() int32 {
	if cur := m.currency(); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

// maxMinorUnits is the largest amount of minor units go-money can format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// String returns the money rounded to its currency fraction and formatted
// with the currency conventions.
//
// Amounts that do not fit in go-money's int64 minor units, and unknown
// currencies, are printed as a fixed point number followed by the code.
func (m Money) String() string {
	cur := m.currency()
	if cur == nil {
		if m.cur == "" {
			return m.value.StringFixed(2)
		}
		return m.value.StringFixed(2) + " " + m.cur
	}
	frac := int32(cur.Fraction)
	dec := m.value.Round(frac).Shift(frac)
	if dec.Abs().GreaterThan(maxMinorUnits) {
		return m.value.StringFixed(frac) + " " + m.cur
	}
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Rounded() decimal.Decimal { return m.value.Round(m.fraction()) }
