package finprim

import (
	"fmt"

	"github.com/etnz/finprim/tvm"
	"github.com/shopspring/decimal"
)

// Scenario is a named set of future value arguments.
type Scenario struct {
	Name     string
	Rate     decimal.Decimal // rate per period
	NPer     decimal.Decimal // number of periods
	Pmt      decimal.Decimal // payment per period
	PV       decimal.Decimal // present value
	Due      bool            // payments at the beginning of periods
	Currency string          // ISO code used to format results, optional
}

// Options returns the optional arguments of the scenario.
func (s Scenario) Options() tvm.Options {
	return tvm.Options{PV: s.PV, Due: s.Due}
}

// Result holds a scenario and both future values computed from it.
type Result struct {
	Scenario Scenario
	FV       Money // spreadsheet sign convention
	Internal Money // strict cash-flow sign convention
}

// Evaluate computes the scenario future value in both sign conventions.
func (s Scenario) Evaluate() (Result, error) {
	internal, err := tvm.FVInternal(s.Rate, s.NPer, s.Pmt, s.Options())
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	fv, err := tvm.FV(s.Rate, s.NPer, s.Pmt, s.Options())
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return Result{
		Scenario: s,
		FV:       M(fv, s.Currency),
		Internal: M(internal, s.Currency),
	}, nil
}

// EvaluateAll evaluates every scenario, stopping at the first error.
func EvaluateAll(scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := s.Evaluate()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (s Scenario) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", s.Name)
	w.Number("rate", s.Rate)
	w.Number("nper", s.NPer)
	w.Number("pmt", s.Pmt)
	w.Number("pv", s.PV)
	w.Optional("due", s.Due)
	w.Optional("currency", s.Currency)
	return w.MarshalJSON()
}

// MarshalJSON writes the scenario fields followed by both results, rounded to
// the currency fraction.
func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("scenario", r.Scenario)
	w.Number("fv", r.FV.Rounded())
	w.Number("fvInternal", r.Internal.Rounded())
	return w.MarshalJSON()
}
