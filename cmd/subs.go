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

type subsCmd struct{}

func (*subsCmd) Name() string     { return "subs" }
func (*subsCmd) Synopsis() string { return "display subscriptions and their monthly cost" }
func (*subsCmd) Usage() string {
	return `fin subs

  Displays every subscription with its monthly equivalent cost. Yearly
  subscriptions are divided by twelve.
`
}

func (c *subsCmd) SetFlags(f *flag.FlagSet) {}

func (c *subsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()
	printMarkdown(renderer.Subscriptions(newFormatter(), finboard.Today(), snap.Subscriptions(), snap.Currency()))
	return subcommands.ExitSuccess
}
