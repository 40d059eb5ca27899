// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/alphavantage"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "ledger")
	c.Register(&buyCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&refreshCmd{}, "ledger")

	c.Register(&priceCmd{}, "analysis")
	c.Register(&valueCmd{}, "analysis")
	c.Register(&movavgCmd{}, "analysis")
	c.Register(&gainlossCmd{}, "analysis")
	c.Register(&crossoverCmd{}, "analysis")

	c.Register(&holdingsCmd{}, "reporting")
	c.Register(&distributionCmd{}, "reporting")
	c.Register(&chartCmd{}, "reporting")

	c.Register(&rebalanceCmd{}, "trading")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.folio", "Path to the portfolio ledger file")
var verbose = flag.Bool("v", false, "Enable verbose logging")

const apiKeyEnv = "SFOL_API_KEY"

// SetupLogging silences the log package unless -v is set. Call after
// flag.Parse.
func SetupLogging() {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
}

// gateway returns the market data gateway built from the SFOL_API_KEY
// environment variable.
func gateway() (*alphavantage.Client, error) {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("environment variable %s is not set", apiKeyEnv)
	}
	return alphavantage.New(key), nil
}

// DecodePortfolio loads the portfolio from the app default ledger file,
// hydrating stock histories through the gateway.
func DecodePortfolio() (*stockfolio.SmartPortfolio, error) {
	g, err := gateway()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(*ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ledger file %q does not exist, run 'sfol create' first", *ledgerFile)
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	p := stockfolio.NewSmartPortfolio("", "")
	if err := p.Load(f, g); err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return p, nil
}

// EncodePortfolio writes the portfolio back to the app default ledger file.
func EncodePortfolio(p *stockfolio.SmartPortfolio) subcommands.ExitStatus {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := p.Save(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
