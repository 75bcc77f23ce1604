package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	currency  string
	principal float64
	rate      float64
	payments  int
	years     int
	target    float64
	current   float64
	periods   int
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "loan, growth and savings calculators" }
func (*calcCmd) Usage() string {
	return `fin calc loan -principal <value> -rate <percent> -payments <n>
fin calc growth -principal <value> -rate <percent> -years <n>
fin calc savings -target <value> -current <value> -periods <n>

  Planning calculators: the fixed payment of a loan, the future value
  of a compounding investment, and the periodic amount needed to reach
  a savings target.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Currency of the amounts.")
	f.Float64Var(&c.principal, "principal", 0, "Principal amount (loan, growth).")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate in percent (loan, growth).")
	f.IntVar(&c.payments, "payments", 0, "Number of monthly payments (loan).")
	f.IntVar(&c.years, "years", 0, "Number of years (growth).")
	f.Float64Var(&c.target, "target", 0, "Target amount (savings).")
	f.Float64Var(&c.current, "current", 0, "Amount already saved (savings).")
	f.IntVar(&c.periods, "periods", 0, "Number of saving periods (savings).")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected one calculator: loan, growth or savings")
		return subcommands.ExitUsageError
	}

	switch f.Arg(0) {
	case "loan":
		schedule := finboard.NewLoanSchedule(
			finboard.M(c.principal, c.currency),
			finboard.Percent(c.rate),
			c.payments,
		)
		fmt.Printf("Monthly payment: %s\n", schedule.Payment)
		fmt.Printf("Total paid:      %s\n", schedule.TotalPayment)
		fmt.Printf("Total interest:  %s\n", schedule.TotalInterest)

	case "growth":
		future := finboard.CompoundFutureValue(
			finboard.M(c.principal, c.currency),
			finboard.Percent(c.rate),
			c.years,
		)
		fmt.Printf("Future value after %d years: %s\n", c.years, future)

	case "savings":
		monthly := finboard.RequiredPeriodicSavings(
			finboard.M(c.target, c.currency),
			finboard.M(c.current, c.currency),
			c.periods,
		)
		fmt.Printf("Required per period: %s\n", monthly)

	default:
		fmt.Fprintf(os.Stderr, "unknown calculator %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
