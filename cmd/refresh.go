package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio"
)

// refreshCmd holds the flags for the 'refresh' subcommand.
type refreshCmd struct {
	full bool
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch the latest closing price of every stock" }
func (*refreshCmd) Usage() string {
	return `sfol refresh [-full]

  Fetches the latest quote for every stock in the ledger and appends it to
  the price history. With -full, re-fetches the entire history instead.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.full, "full", false, "re-fetch the full price history of every stock")
}

func (c *refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	g, err := gateway()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.full {
		if err := p.Refresh(g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Refreshed price histories for %d stocks\n", p.Len())
		return subcommands.ExitSuccess
	}

	for stock := range p.Stocks() {
		price, on, err := g.Latest(stock.Ticker())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching latest quote for %s: %v\n", stock.Ticker(), err)
			return subcommands.ExitFailure
		}
		err = stock.AppendClosing(price, on)
		switch {
		case errors.Is(err, stockfolio.ErrInvalidArgument):
			// Already have this day's close.
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s on %s\n", stock.Ticker(), stockfolio.USD(price), on)
	}
	return subcommands.ExitSuccess
}
