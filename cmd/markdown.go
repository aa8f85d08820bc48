package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finprim"
)

// printMarkdown renders markdown on stdout, falling back to the raw text.
func printMarkdown(md string) {
	if err := printMarkdownTo(os.Stdout, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
	}
}

func printMarkdownTo(w io.Writer, md string) error {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(w, md)
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// renderResults returns a markdown table of results.
func renderResults(results []finprim.Result) string {
	var b strings.Builder
	b.WriteString("| Scenario | Rate | Periods | Payment | Present value | Timing | FV | Cash-flow FV |\n")
	b.WriteString("|:---|---:|---:|---:|---:|:---:|---:|---:|\n")
	for _, r := range results {
		s := r.Scenario
		timing := "end"
		if s.Due {
			timing = "begin"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			s.Name,
			finprim.FormatRate(s.Rate),
			s.NPer,
			finprim.M(s.Pmt, s.Currency),
			finprim.M(s.PV, s.Currency),
			timing,
			r.FV,
			r.Internal,
		)
	}
	return b.String()
}
