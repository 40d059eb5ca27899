package stockfolio

import (
	"fmt"
	"iter"

	"github.com/shlok12343/stockfolio/date"
)

// Portfolio is a named collection of stock holdings owned by a client.
//
// Per stock it keeps an append-only event log of signed quantity deltas
// (positive for acquisitions, negative for disposals) keyed by date. A stock
// once added is never removed from the log; a fully disposed stock simply
// sums to zero from the disposal date on.
type Portfolio struct {
	name  string
	owner string

	tickers  []string // insertion order, drives report and prompt order
	holdings map[string]*holding
}

// holding pairs a stock with its quantity delta series.
type holding struct {
	stock  *Stock
	deltas *date.History[float64]
}

// NewPortfolio returns an empty portfolio with the given name and owner.
func NewPortfolio(name, owner string) *Portfolio {
	return &Portfolio{
		name:     name,
		owner:    owner,
		holdings: make(map[string]*holding),
	}
}

// Name returns the portfolio name.
func (p *Portfolio) Name() string { return p.name }

// SetName renames the portfolio, typically when loading from storage.
func (p *Portfolio) SetName(name string) { p.name = name }

// Owner returns the name of the owning client.
func (p *Portfolio) Owner() string { return p.owner }

// Equal reports whether two portfolios have the same name and owner.
// Holdings do not participate in equality.
func (p *Portfolio) Equal(other *Portfolio) bool {
	return other != nil && p.name == other.name && p.owner == other.owner
}

// Len returns the number of stocks ever added to the portfolio.
func (p *Portfolio) Len() int { return len(p.tickers) }

// Stock returns the stock held under ticker, or nil if it was never added.
func (p *Portfolio) Stock(ticker string) *Stock {
	h, ok := p.holdings[ticker]
	if !ok {
		return nil
	}
	return h.stock
}

// Stocks iterates over all stocks ever added, in insertion order.
func (p *Portfolio) Stocks() iter.Seq[*Stock] {
	return func(yield func(*Stock) bool) {
		for _, ticker := range p.tickers {
			if !yield(p.holdings[ticker].stock) {
				return
			}
		}
	}
}

// AddLot records the acquisition of quantity shares of stock on the given
// date. Same-day lots accumulate into a single delta.
func (p *Portfolio) AddLot(stock *Stock, quantity float64, on date.Date) error {
	if quantity <= 0 {
		return fmt.Errorf("cannot add zero or negative shares: %w", ErrInvalidArgument)
	}
	h, ok := p.holdings[stock.Ticker()]
	if !ok {
		h = &holding{stock: stock, deltas: new(date.History[float64])}
		p.holdings[stock.Ticker()] = h
		p.tickers = append(p.tickers, stock.Ticker())
	}
	h.deltas.AppendAdd(on, quantity)
	return nil
}

// RemoveLot records the disposal of quantity shares of stock on the given
// date. The disposal must not exceed the total quantity held across the
// whole event log.
func (p *Portfolio) RemoveLot(stock *Stock, quantity float64, on date.Date) error {
	if quantity <= 0 {
		return fmt.Errorf("cannot remove zero or negative shares: %w", ErrInvalidArgument)
	}
	h, ok := p.holdings[stock.Ticker()]
	if !ok {
		return fmt.Errorf("stock %s not found in portfolio: %w", stock.Ticker(), ErrInvalidArgument)
	}
	var total float64
	for _, delta := range h.deltas.Values() {
		total += delta
	}
	if total == 0 {
		return fmt.Errorf("you have zero %s shares: %w", stock.Ticker(), ErrInvalidArgument)
	}
	if total-quantity < 0 {
		return fmt.Errorf("removal quantity exceeds the %v %s shares held: %w", total, stock.Ticker(), ErrInvalidArgument)
	}
	h.deltas.AppendAdd(on, -quantity)
	return nil
}

// Refresh replaces every stock's price history with a freshly fetched one.
// The event logs are untouched. The first fetch failure aborts the refresh,
// leaving the remaining stocks on their previous histories.
func (p *Portfolio) Refresh(g QuoteGateway) error {
	for _, ticker := range p.tickers {
		prices, err := g.FetchHistory(ticker)
		if err != nil {
			return fmt.Errorf("refreshing %s: %w", ticker, err)
		}
		p.holdings[ticker].stock.prices = prices
	}
	return nil
}

// QuantityAsOf returns the running quantity of a ticker on the given date:
// the sum of all deltas dated on or before it. An unknown ticker is 0.
func (p *Portfolio) QuantityAsOf(ticker string, on date.Date) float64 {
	h, ok := p.holdings[ticker]
	if !ok {
		return 0
	}
	return h.deltas.SumTo(on)
}

// Position is a stock and its quantity held on a given date.
type Position struct {
	Stock    *Stock
	Quantity float64
}

// HoldingsAsOf returns every stock with a positive running quantity on the
// given date, in insertion order, with quantities rounded to 2 decimals.
func (p *Portfolio) HoldingsAsOf(on date.Date) []Position {
	var positions []Position
	for _, ticker := range p.tickers {
		if qty := p.QuantityAsOf(ticker, on); qty > 0 {
			positions = append(positions, Position{
				Stock:    p.holdings[ticker].stock,
				Quantity: round2(qty),
			})
		}
	}
	return positions
}

// ValueOfStock returns quantity times closing price for a ticker on the
// given date, rounded to 2 decimals. The price lookup snaps dates; its
// failure propagates.
func (p *Portfolio) ValueOfStock(ticker string, on date.Date) (float64, error) {
	h, ok := p.holdings[ticker]
	if !ok {
		return 0, fmt.Errorf("stock %s not found in portfolio: %w", ticker, ErrInvalidArgument)
	}
	price, err := h.stock.ClosingPrice(on)
	if err != nil {
		return 0, err
	}
	return round2(h.deltas.SumTo(on) * price), nil
}

// TotalValue sums ValueOfStock over all holdings on the given date. Stocks
// with a zero or negative running quantity are skipped before any price
// lookup, so long-disposed tickers with stale histories never fail a
// valuation.
func (p *Portfolio) TotalValue(on date.Date) (float64, error) {
	var total float64
	for _, ticker := range p.tickers {
		if p.QuantityAsOf(ticker, on) <= 0 {
			continue
		}
		value, err := p.ValueOfStock(ticker, on)
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}
