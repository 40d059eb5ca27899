package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio/date"
)

// gainlossCmd holds the flags for the 'gainloss' subcommand.
type gainlossCmd struct {
	start string
	end   string
}

func (*gainlossCmd) Name() string     { return "gainloss" }
func (*gainlossCmd) Synopsis() string { return "show a stock's price change over a period" }
func (*gainlossCmd) Usage() string {
	return `sfol gainloss -s <start> [-d <end>] <ticker>

  Shows the closing price difference between two dates. A positive result
  is a gain, a negative one a loss. Both dates snap to nearby trading days.
`
}

func (c *gainlossCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the period (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", date.Today().String(), "End date of the period (YYYY-MM-DD)")
}

func (c *gainlossCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	diff, err := stock.GainLoss(start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	switch {
	case diff >= 0:
		fmt.Printf("%s gained %.2f from %s to %s\n", stock.Ticker(), diff, start, end)
	default:
		fmt.Printf("%s lost %.2f from %s to %s\n", stock.Ticker(), -diff, start, end)
	}
	return subcommands.ExitSuccess
}
