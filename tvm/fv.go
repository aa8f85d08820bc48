package tvm

import "github.com/shopspring/decimal"

// PowPrecision is the number of digits after the decimal point kept by the
// compounding factor (1+rate)^nper, whatever nper is.
const PowPrecision = 32

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
)

// Options holds the optional arguments of the formulas.
// The zero value is ready to use.
type Options struct {
	PV  decimal.Decimal // present value, 0 by default
	Due bool            // true if payments happen at the beginning of each period
}

// FVInternal returns the future value of a stream of payments under compound
// interest, using the strict cash-flow sign convention.
//
// rate is the interest rate per period, nper the number of compounding
// periods (possibly fractional) and pmt the payment made each period.
//
// With a zero rate the result is pmt*nper+pv; the payment timing has no
// effect then.
func FVInternal(rate, nper, pmt decimal.Decimal, opt Options) (decimal.Decimal, error) {
	pv := opt.PV

	if rate.Equal(zero) {
		return pmt.Mul(nper).Add(pv), nil
	}

	growth, err := one.Add(rate).PowWithPrecision(nper, PowPrecision)
	if err != nil {
		return decimal.Decimal{}, err
	}
	// integer powers are exact, with about as many digits as nper.
	growth = growth.Round(PowPrecision)
	factor := growth.Sub(one).Div(rate)
	pvGrown := pv.Mul(growth)

	if opt.Due {
		return pmt.Mul(factor).Mul(one.Add(rate)).Add(pvGrown), nil
	}
	return pmt.Mul(factor).Add(pvGrown), nil
}

// FV returns the future value like the spreadsheet FV function does.
//
// Payments and present value paid out are entered as negative numbers, and
// the result is the value received at the end, usually positive. It is
// always the negation of [FVInternal] for the same arguments.
//
// For instance FV(0.06/12, 10, -200, -500, 1) is
//
//	rate := decimal.RequireFromString("0.005")
//	FV(rate, decimal.NewFromInt(10), decimal.NewFromInt(-200), Options{
//		PV:  decimal.NewFromInt(-500),
//		Due: true,
//	}) // 2581.4033741...
func FV(rate, nper, pmt decimal.Decimal, opt Options) (decimal.Decimal, error) {
	fv, err := FVInternal(rate, nper, pmt, opt)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return fv.Neg(), nil
}
