package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio"
)

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct {
	owner string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new empty portfolio ledger" }
func (*createCmd) Usage() string {
	return `sfol create [-owner <name>] <portfolio-name>

  Creates a new empty ledger file for a named portfolio. Fails if the
  ledger file already exists.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Name of the portfolio owner")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one portfolio name")
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(*ledgerFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: ledger file %q already exists\n", *ledgerFile)
		return subcommands.ExitFailure
	}

	p := stockfolio.NewSmartPortfolio(f.Arg(0), c.owner)
	if status := EncodePortfolio(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created portfolio %q in %s\n", p.Name(), *ledgerFile)
	return subcommands.ExitSuccess
}
