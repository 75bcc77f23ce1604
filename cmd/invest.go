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

type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "display investment holdings and allocation" }
func (*investCmd) Usage() string {
	return `fin invest

  Displays every holding with its value and 24h move, plus the
  portfolio allocation by asset type.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()
	printMarkdown(renderer.Investments(newFormatter(), finboard.Today(), snap.Investments(), snap.Currency()))
	return subcommands.ExitSuccess
}
