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
)

type evalCmd struct {
	selector string
	json     bool
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate the scenarios of JSON, TOML or YAML files" }
func (*evalCmd) Usage() string {
	return `tvmcalc eval [-select <jsonpath>] [-json] <file>...

  Evaluates the future value of every scenario found in the files, in both
  sign conventions. See 'tvmcalc topic scenario-files' for the file format.

Usage Examples:
$ tvmcalc eval plans.yaml
$ tvmcalc eval -select '$.plans[*]' -json plans.json

`
}

func (p *evalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.selector, "select", finprim.DefaultSelector, "JSONPath expression selecting the scenarios.")
	f.BoolVar(&p.json, "json", false, "Print one JSON result per line.")
}

// load reads and evaluates all the scenarios of the files.
func (p *evalCmd) load(files []string) ([]finprim.Result, error) {
	var results []finprim.Result
	for _, file := range files {
		scenarios, err := finprim.LoadScenarios(file, p.selector)
		if err != nil {
			return nil, err
		}
		logf("loaded %d scenarios from %q", len(scenarios), file)
		for i := range scenarios {
			if scenarios[i].Currency == "" {
				scenarios[i].Currency = *defaultCurrency
			}
		}
		r, err := finprim.EvaluateAll(scenarios)
		if err != nil {
			return nil, fmt.Errorf("in %q: %w", file, err)
		}
		results = append(results, r...)
	}
	return results, nil
}

func (p *evalCmd) print(w io.Writer, results []finprim.Result) error {
	if !p.json {
		return printMarkdownTo(w, renderResults(results))
	}
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one scenario file is required.")
		return subcommands.ExitUsageError
	}
	results, err := p.load(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.print(os.Stdout, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
