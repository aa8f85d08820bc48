package cmd

import (
	"flag"

	"github.com/etnz/finprim/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of tvmcalc, built from the flags
// of the global flag set and of each command.
func Completion(global *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, sub := range Commands {
		f := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(f)
		c.Sub[sub.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argsPredictor(sub),
		}
	}
	return c
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

func argsPredictor(sub subcommands.Command) complete.Predictor {
	switch sub.(type) {
	case *evalCmd:
		return predict.Files("*")
	case *topicCmd:
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(topics)
	default:
		return predict.Nothing
	}
}
