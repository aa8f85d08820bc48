package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finprim"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type fvCmd struct {
	rate     string
	nper     string
	pmt      string
	pv       string
	due      bool
	internal bool
	currency string
	json     bool
}

func (*fvCmd) Name() string     { return "fv" }
func (*fvCmd) Synopsis() string { return "compute the future value of a stream of payments" }
func (*fvCmd) Usage() string {
	return `tvmcalc fv -rate <rate> -nper <periods> -pmt <payment> [-pv <present value>] [-due] [-internal] [-currency <code>] [-json]

  Computes the future value like the spreadsheet FV function: money paid out is
  negative, and the result is the value received at the end.
  Use -internal for the strict cash-flow figure, the exact opposite.

Usage Examples:
# FV(0.06/12, 10, -200, -500, 1)
$ tvmcalc fv -rate 6%/12 -nper 10 -pmt -200 -pv -500 -due

`
}

func (p *fvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.rate, "rate", "", "Rate per period: 0.05, 5% or 6%/12.")
	f.StringVar(&p.nper, "nper", "", "Number of periods, can be fractional.")
	f.StringVar(&p.pmt, "pmt", "0", "Payment per period, negative when paid out.")
	f.StringVar(&p.pv, "pv", "0", "Present value, negative when paid out.")
	f.BoolVar(&p.due, "due", false, "Payments at the beginning of each period.")
	f.BoolVar(&p.internal, "internal", false, "Print the strict cash-flow future value.")
	f.StringVar(&p.currency, "currency", "", "ISO currency code of the amounts. Overrides the global -currency.")
	f.BoolVar(&p.json, "json", false, "Print the result as JSON.")
}

// scenario builds the scenario from the flags.
func (p *fvCmd) scenario() (s finprim.Scenario, err error) {
	if p.rate == "" || p.nper == "" {
		return s, fmt.Errorf("-rate and -nper are required")
	}
	if s.Rate, err = finprim.ParseRate(p.rate); err != nil {
		return s, err
	}
	if s.NPer, err = decimal.NewFromString(p.nper); err != nil {
		return s, fmt.Errorf("invalid -nper %q: %w", p.nper, err)
	}
	if s.Pmt, err = decimal.NewFromString(p.pmt); err != nil {
		return s, fmt.Errorf("invalid -pmt %q: %w", p.pmt, err)
	}
	if s.PV, err = decimal.NewFromString(p.pv); err != nil {
		return s, fmt.Errorf("invalid -pv %q: %w", p.pv, err)
	}
	s.Due = p.due
	s.Currency = p.currency
	if s.Currency == "" {
		s.Currency = *defaultCurrency
	}
	return s, nil
}

// print writes the result.
func (p *fvCmd) print(w io.Writer, r finprim.Result) error {
	if p.json {
		return json.NewEncoder(w).Encode(r)
	}
	fv := r.FV
	if p.internal {
		fv = r.Internal
	}
	_, err := fmt.Fprintln(w, fv)
	return err
}

func (p *fvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := p.scenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logf("fv rate=%v nper=%v pmt=%v pv=%v due=%v", s.Rate, s.NPer, s.Pmt, s.PV, s.Due)

	r, err := s.Evaluate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing future value: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.print(os.Stdout, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
