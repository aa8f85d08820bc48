package tvm

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MustFVInternal is like [FVInternal] but panics if computing error.
func MustFVInternal(rate, nper, pmt decimal.Decimal, opt Options) decimal.Decimal {
	fv, err := FVInternal(rate, nper, pmt, opt)
	if err != nil {
		panic(fmt.Sprintf("MustFVInternal(%v, %v, %v) failed: %v", rate, nper, pmt, err))
	}
	return fv
}

// MustFV is like [FV] but panics if computing error.
func MustFV(rate, nper, pmt decimal.Decimal, opt Options) decimal.Decimal {
	fv, err := FV(rate, nper, pmt, opt)
	if err != nil {
		panic(fmt.Sprintf("MustFV(%v, %v, %v) failed: %v", rate, nper, pmt, err))
	}
	return fv
}
