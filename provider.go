package stockfolio

import (
	"fmt"

	"github.com/shlok12343/stockfolio/date"
)

// QuoteGateway resolves ticker symbols to historical price data.
// The alphavantage subpackage provides the production implementation.
type QuoteGateway interface {
	// IsKnownTicker reports whether the symbol is known and tradeable.
	IsKnownTicker(symbol string) bool

	// FetchHistory returns the full daily closing price history for a
	// ticker. An empty history surfaces as an ErrNoPriceData error.
	FetchHistory(ticker string) (*date.History[float64], error)
}

// MakeStock fetches the history for ticker through the gateway and returns a
// validated Stock.
func MakeStock(g QuoteGateway, ticker string) (*Stock, error) {
	history, err := g.FetchHistory(ticker)
	if err != nil {
		return nil, fmt.Errorf("could not make stock %q: %w", ticker, err)
	}
	return NewStock(g, ticker, history)
}
