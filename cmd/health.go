package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/finboard/finboard/renderer"
	"github.com/google/subcommands"
)

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	date string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display the financial health score" }
func (*healthCmd) Usage() string {
	return `fin health [-d <date>]

  Scores the finances out of 100 on five axes: savings rate, budget
  discipline, emergency fund, bill punctuality and diversification.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finboard.Today().String(), "Date for the score.")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()

	score := finboard.NewHealthScore(snap, on, snap.Currency())
	printMarkdown(renderer.Health(newFormatter(), on, score))
	return subcommands.ExitSuccess
}
