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

// trendCmd holds the flags for the 'trend' subcommand.
type trendCmd struct {
	months int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the month-by-month income and expense series" }
func (*trendCmd) Usage() string {
	return `fin trend [-n <months>]

  Displays the month-by-month income and expense totals. Months with no
  activity are omitted.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 0, "Keep only the last n months. All by default.")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()

	totals := finboard.MonthlyTotals(snap.All(), snap.Currency())
	if c.months > 0 && len(totals) > c.months {
		totals = totals[len(totals)-c.months:]
	}

	printMarkdown(renderer.MonthlyTrend(newFormatter(), finboard.Today(), totals))
	return subcommands.ExitSuccess
}
