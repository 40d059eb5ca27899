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

// movavgCmd holds the flags for the 'movavg' subcommand.
type movavgCmd struct {
	date   string
	window int
}

func (*movavgCmd) Name() string     { return "movavg" }
func (*movavgCmd) Synopsis() string { return "show a stock's moving average closing price" }
func (*movavgCmd) Usage() string {
	return `sfol movavg [-d <date>] [-x <days>] <ticker>

  Shows the moving average of a stock's closing price over the window of
  days ending on the given date. Both window endpoints snap to nearby
  trading days.
`
}

func (c *movavgCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "End date of the window (YYYY-MM-DD)")
	f.IntVar(&c.window, "x", 30, "Window length in days")
}

func (c *movavgCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker")
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
	stock := p.Stock(f.Arg(0))
	if stock == nil {
		fmt.Fprintf(os.Stderr, "Error: no stock %s in the portfolio\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	avg, err := stock.MovingAverage(on, c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %d-day moving average on %s: %s\n", stock.Ticker(), c.window, on, stockfolio.USD(avg))
	return subcommands.ExitSuccess
}
