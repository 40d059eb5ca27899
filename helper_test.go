package stockfolio

import (
	"fmt"
	"testing"

	"github.com/shlok12343/stockfolio/date"
)

// fakeGateway is an in-memory QuoteGateway for tests.
type fakeGateway struct {
	histories map[string]map[string]float64 // ticker -> date -> close
}

func (g *fakeGateway) IsKnownTicker(symbol string) bool {
	_, ok := g.histories[symbol]
	return ok
}

func (g *fakeGateway) FetchHistory(ticker string) (*date.History[float64], error) {
	prices, ok := g.histories[ticker]
	if !ok || len(prices) == 0 {
		return nil, fmt.Errorf("%s: %w", ticker, ErrNoPriceData)
	}
	h := new(date.History[float64])
	for day, close := range prices {
		h.Append(date.MustParse(day), close)
	}
	return h, nil
}

// newTestStock builds a Stock without gateway validation.
func newTestStock(t *testing.T, ticker string, prices map[string]float64) *Stock {
	t.Helper()
	h := new(date.History[float64])
	for day, close := range prices {
		h.Append(date.MustParse(day), close)
	}
	s, err := NewStock(nil, ticker, h)
	if err != nil {
		t.Fatalf("NewStock(%s): %v", ticker, err)
	}
	return s
}

// flatPrices builds a date->price map with the same price for every day in
// [from, to].
func flatPrices(from, to string, price float64) map[string]float64 {
	prices := make(map[string]float64)
	for on := date.MustParse(from); !on.After(date.MustParse(to)); on = on.Add(1) {
		prices[on.String()] = price
	}
	return prices
}
