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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	query    string
	category string
	status   string
	from     string
	to       string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, optionally filtered" }
func (*txCmd) Usage() string {
	return `fin tx [-q <text>] [-cat <category>] [-status <status>] [-from <date>] [-to <date>]

  Lists transactions, most recent first. Filters narrow the listing and
  never change the order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Text to search in description or category, case-insensitive.")
	f.StringVar(&c.category, "cat", "", "Category to match exactly.")
	f.StringVar(&c.status, "status", "", "Status to match exactly (completed, pending, failed, refunded).")
	f.StringVar(&c.from, "from", "", "Earliest date, inclusive.")
	f.StringVar(&c.to, "to", "", "Latest date, inclusive.")
}

func (c *txCmd) filter() (finboard.Filter, error) {
	var filter finboard.Filter
	filter.Query = c.query

	if c.category != "" {
		cat, err := finboard.ParseCategory(c.category)
		if err != nil {
			return filter, err
		}
		filter.Category = cat
	}
	if c.status != "" {
		status, err := finboard.ParseStatus(c.status)
		if err != nil {
			return filter, err
		}
		filter.Status = status
	}
	var from, to finboard.Date
	var err error
	if c.from != "" {
		if from, err = finboard.ParseDate(c.from); err != nil {
			return filter, err
		}
	}
	if c.to != "" {
		if to, err = finboard.ParseDate(c.to); err != nil {
			return filter, err
		}
	}
	if c.from != "" || c.to != "" {
		filter.Range = finboard.Range{From: from, To: to}
	}
	return filter, nil
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := store.Snapshot()

	records := filter.Apply(snap.All())
	printMarkdown(renderer.Transactions(newFormatter(), finboard.Today(), records, snap.Len()))

	return subcommands.ExitSuccess
}
