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

// billsCmd holds the flags for the 'bills' subcommand.
type billsCmd struct {
	date    string
	autopay string
}

func (*billsCmd) Name() string     { return "bills" }
func (*billsCmd) Synopsis() string { return "display bills with due-date context" }
func (*billsCmd) Usage() string {
	return `fin bills [-d <date>] [-autopay <bill-id>]

  Displays every bill with the days until (or since) its due date and
  the total due in the next 30 days. -autopay flips a bill's auto-pay
  flag for this listing.
`
}

func (c *billsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finboard.Today().String(), "Reference date for due-date arithmetic.")
	f.StringVar(&c.autopay, "autopay", "", "Id of a bill whose auto-pay flag to toggle.")
}

func (c *billsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.autopay != "" {
		snap, err = store.ToggleAutoPay(c.autopay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bill %q: %v\n", c.autopay, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Bills(newFormatter(), on, snap.Bills(), snap.Currency()))
	return subcommands.ExitSuccess
}
