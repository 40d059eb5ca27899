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

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	date   string
	latest bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show a stock's closing price" }
func (*priceCmd) Usage() string {
	return `sfol price [-d <date>] [-latest] <ticker>

  Shows the closing price of a stock on a given date, snapping to a nearby
  trading day when the date itself has no price. With -latest, queries the
  provider for the most recent quote instead.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the price lookup (YYYY-MM-DD)")
	f.BoolVar(&c.latest, "latest", false, "query the latest quote from the provider")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	if c.latest {
		g, err := gateway()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		price, on, err := g.Latest(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching latest quote: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s latest price on %s: %s\n", ticker, on, stockfolio.USD(price))
		return subcommands.ExitSuccess
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

	price, err := stock.ClosingPrice(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s closing price on %s: %s\n", ticker, on, stockfolio.USD(price))
	return subcommands.ExitSuccess
}
