package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio/date"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of shares" }
func (*sellCmd) Usage() string {
	return `sfol sell [-d <date>] <ticker> <quantity>

  Records the disposal of shares in the ledger. The sale must not exceed
  the total quantity held.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Disposal date (YYYY-MM-DD)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		fmt.Fprintf(os.Stderr, "Error: no stock %s in the portfolio\n", ticker)
		return subcommands.ExitFailure
	}

	if err := p.RemoveLot(stock, quantity, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := EncodePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sold %v %s on %s\n", quantity, ticker, on)
	return subcommands.ExitSuccess
}
