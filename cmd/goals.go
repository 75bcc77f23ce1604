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

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `fin goals [-d <date>]

  Displays every savings goal with its progress and the monthly amount
  required to reach it by its deadline.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finboard.Today().String(), "Reference date for deadline arithmetic.")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Goals(newFormatter(), on, snap.Goals(), snap.Currency()))
	return subcommands.ExitSuccess
}
