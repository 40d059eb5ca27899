package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio/date"
	"github.com/shlok12343/stockfolio/renderer"
)

// distributionCmd holds the flags for the 'distribution' subcommand.
type distributionCmd struct {
	date string
}

func (*distributionCmd) Name() string { return "distribution" }
func (*distributionCmd) Synopsis() string {
	return "display how the portfolio value splits across stocks"
}
func (*distributionCmd) Usage() string {
	return `sfol distribution [-d <date>]

  Displays each held stock's market value on a given date and the total
  portfolio value.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the distribution report (YYYY-MM-DD)")
}

func (c *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := p.DistributionOnDate(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDistribution(report))
	return subcommands.ExitSuccess
}
