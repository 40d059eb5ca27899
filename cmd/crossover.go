package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio/date"
)

// crossoverCmd holds the flags for the 'crossover' subcommand.
type crossoverCmd struct {
	start  string
	end    string
	window int
}

func (*crossoverCmd) Name() string { return "crossover" }
func (*crossoverCmd) Synopsis() string {
	return "list the days a stock closed above its moving average"
}
func (*crossoverCmd) Usage() string {
	return `sfol crossover -s <start> [-d <end>] [-x <days>] <ticker>

  Lists every trading day in the period on which the closing price was
  strictly above the moving average over the preceding window.
`
}

func (c *crossoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the period (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the period (YYYY-MM-DD)")
	f.IntVar(&c.window, "x", 30, "Moving average window length in days")
}

func (c *crossoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one ticker")
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
	stock := p.Stock(f.Arg(0))
	if stock == nil {
		fmt.Fprintf(os.Stderr, "Error: no stock %s in the portfolio\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	days, err := stock.Crossovers(start, end, c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(days) == 0 {
		fmt.Printf("%s never closed above its %d-day moving average from %s to %s\n",
			stock.Ticker(), c.window, start, end)
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s closed above its %d-day moving average on:\n", stock.Ticker(), c.window)
	for _, day := range days {
		fmt.Println(day)
	}
	return subcommands.ExitSuccess
}
