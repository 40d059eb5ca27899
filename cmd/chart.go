package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio/date"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	start string
	end   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw an ASCII performance chart" }
func (*chartCmd) Usage() string {
	return `sfol chart -s <start> [-d <end>] [<ticker>]

  Draws an ASCII chart of a stock's closing price between two dates, or of
  the whole portfolio's value when no ticker is given. The sampling
  interval adapts to the span, see 'sfol topic charts'.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the chart (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the chart (YYYY-MM-DD)")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one ticker")
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var chart string
	if f.NArg() == 1 {
		stock := p.Stock(f.Arg(0))
		if stock == nil {
			fmt.Fprintf(os.Stderr, "Error: no stock %s in the portfolio\n", f.Arg(0))
			return subcommands.ExitFailure
		}
		chart, err = stock.PerformanceOverTime(start, end)
	} else {
		chart, err = p.PerformanceOverTime(start, end)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(chart)
	return subcommands.ExitSuccess
}
