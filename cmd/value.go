package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/date"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	date string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show the market value of a stock or the portfolio" }
func (*valueCmd) Usage() string {
	return `sfol value [-d <date>] [<ticker>]

  Shows the market value of one holding on a given date, or of the whole
  portfolio when no ticker is given.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date (YYYY-MM-DD)")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one ticker")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 1 {
		value, err := p.ValueOfStock(f.Arg(0), on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Value of %s on %s: %s\n", f.Arg(0), on, stockfolio.USD(value))
		return subcommands.ExitSuccess
	}

	total, err := p.TotalValue(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Total value of '%s' on %s: %s\n", p.Name(), on, stockfolio.USD(total))
	return subcommands.ExitSuccess
}
