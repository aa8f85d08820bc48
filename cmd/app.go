// Package cmd implements the tvmcalc command-line application.
package cmd

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

const (
	EnvDefaultCurrency = "TVMCALC_CURRENCY"
	EnvVerbose         = "TVMCALC_VERBOSE"
)

// Commands lists all the tvmcalc subcommands.
var Commands = []subcommands.Command{
	&fvCmd{},
	&evalCmd{},
	&topicCmd{},
}

// groups maps command names to their help group.
var groups = map[string]string{
	"fv":    "calculations",
	"eval":  "calculations",
	"topic": "documentation",
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, sub := range Commands {
		c.Register(sub, groups[sub.Name()])
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", os.Getenv(EnvDefaultCurrency), "Default ISO currency code used to format results (env "+EnvDefaultCurrency+")")

// Verbose enables logging on stderr.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose output (env "+EnvVerbose+")")

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}

// logf logs only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}
