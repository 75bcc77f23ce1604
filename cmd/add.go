package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	description string
	amount      float64
	currency    string
	category    string
	kind        string
	method      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `fin add -desc <text> -amount <value> -cat <category> [-k income|expense] [-d <date>] [-m <method>]

  Records a transaction in your personal records file. It is merged into
  every report alongside the dataset.

Usage Examples:
$ fin add -desc "Coffee" -amount 4.50 -cat Food -k expense
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finboard.Today().String(), "Date of the transaction.")
	f.StringVar(&c.description, "desc", "", "Description of the transaction.")
	f.Float64Var(&c.amount, "amount", 0, "Amount, a positive number.")
	f.StringVar(&c.currency, "c", "", "Currency. Defaults to the dataset currency.")
	f.StringVar(&c.category, "cat", "", "Category of the transaction.")
	f.StringVar(&c.kind, "k", "expense", "Kind: income or expense.")
	f.StringVar(&c.method, "m", string(finboard.Card), "Payment method: card, bank, cash, crypto or paypal.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := finboard.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := finboard.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := finboard.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	method, err := finboard.ParsePaymentMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := LoadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := c.currency
	if currency == "" {
		currency = store.Snapshot().Currency()
	}

	r := finboard.NewRecord(day, c.description, category, finboard.M(c.amount, currency), kind)
	r.Method = method

	// Validate through the store first so a bad record never reaches the file.
	if _, err := store.Add(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	prefs, err := OpenPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := prefs.AppendUserRecord(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %q %s on %s\n", r.Kind, r.Description, r.Amount, r.Date)
	return subcommands.ExitSuccess
}
