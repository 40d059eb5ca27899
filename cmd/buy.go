package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/date"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of shares" }
func (*buyCmd) Usage() string {
	return `sfol buy [-d <date>] <ticker> <quantity>

  Records the acquisition of shares in the ledger. A ticker bought for the
  first time is validated and its price history is fetched.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Acquisition date (YYYY-MM-DD)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <ticker> <quantity>")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	quantity, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
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

	stock := p.Stock(ticker)
	if stock == nil {
		g, err := gateway()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if stock, err = stockfolio.MakeStock(g, ticker); err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
	}

	if err := p.AddLot(stock, quantity, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := EncodePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Bought %v %s on %s\n", quantity, ticker, on)
	return subcommands.ExitSuccess
}
