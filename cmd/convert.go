package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	amount float64
	from   string
	to     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `fin convert -amount <value> -from <currency> -to <currency>

  Converts an amount using the dataset's exchange-rate table. The
  conversion goes through the base currency.

Usage Examples:
$ fin convert -amount 100 -from EUR -to GBP
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to convert.")
	f.StringVar(&c.from, "from", "", "Currency of the amount.")
	f.StringVar(&c.to, "to", "", "Currency to convert to.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "both -from and -to must be provided")
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	rates := store.Snapshot().Rates()

	converted, err := rates.Convert(finboard.M(c.amount, c.from), c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s = %s\n", finboard.M(c.amount, c.from), converted)
	return subcommands.ExitSuccess
}
