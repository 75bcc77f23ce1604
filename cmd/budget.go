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

type budgetCmd struct{}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display budget categories and their usage" }
func (*budgetCmd) Usage() string {
	return `fin budget

  Displays each budget category with its limit, the amount spent and a
  status: on-track, near-limit or over-budget.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()
	printMarkdown(renderer.Budgets(newFormatter(), finboard.Today(), snap.Budgets()))
	return subcommands.ExitSuccess
}
