// Package finprim provides exact time-value-of-money calculations, matching
// the semantics of the spreadsheet financial functions.
//
// The formulas themselves live in the tvm sub-package and are pure
// functions on shopspring decimals. This package adds what is needed to use
// them on real figures:
//   - Rates: parsing "5%", "0.05" or "6%/12" (an annual rate split per month).
//   - Money: rounding and formatting results in a currency.
//   - Scenarios: named sets of arguments evaluated in both sign conventions.
//   - Scenario files: decoding JSON, TOML or YAML documents, with a JSONPath
//     selector to pick the scenarios.
//
// This package serves as the foundation of the `tvmcalc` command-line tool.
package finprim
