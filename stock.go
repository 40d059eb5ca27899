package stockfolio

import (
	"fmt"

	"github.com/shlok12343/stockfolio/date"
)

// Stock represents a single ticker and its historical daily closing prices.
//
// Date lookups snap to the nearest available trading day (exact, +1, -1,
// +2, -2 days, in that order) so queries on weekends and holidays resolve
// without a trading calendar.
type Stock struct {
	ticker string
	prices *date.History[float64]
}

// NewStock returns a Stock for ticker with the given price history.
// The ticker is validated against the gateway; an unrecognized symbol is an
// ErrUnknownTicker error. A nil gateway skips validation.
func NewStock(g QuoteGateway, ticker string, prices *date.History[float64]) (*Stock, error) {
	if g != nil && !g.IsKnownTicker(ticker) {
		return nil, fmt.Errorf("%q: %w", ticker, ErrUnknownTicker)
	}
	if prices == nil {
		prices = new(date.History[float64])
	}
	return &Stock{ticker: ticker, prices: prices}, nil
}

// Ticker returns the stock's ticker symbol.
func (s *Stock) Ticker() string { return s.ticker }

// snapOffsets is the fixed search order used to resolve a date to a nearby
// trading day.
var snapOffsets = []int{0, 1, -1, 2, -2}

// Snap resolves a requested date to the nearest date with price data.
// When no candidate within the window has data, the original date is
// returned with ok false.
func (s *Stock) Snap(on date.Date) (resolved date.Date, ok bool) {
	for _, offset := range snapOffsets {
		if candidate := on.Add(offset); hasValue(s.prices, candidate) {
			return candidate, true
		}
	}
	return on, false
}

func hasValue(h *date.History[float64], on date.Date) bool {
	_, ok := h.Get(on)
	return ok
}

// ClosingPrice returns the closing price on the given date, snapped to the
// nearest trading day.
func (s *Stock) ClosingPrice(on date.Date) (float64, error) {
	resolved, ok := s.Snap(on)
	if !ok {
		return 0, fmt.Errorf("%s on %s: %w", s.ticker, on, ErrNotFound)
	}
	price, _ := s.prices.Get(resolved)
	return price, nil
}

// MovingAverage computes the arithmetic mean of the closing prices in the
// closed interval [date-xDays, date], both endpoints snapped. Either
// endpoint missing after snapping is an ErrNotFound error.
func (s *Stock) MovingAverage(on date.Date, xDays int) (float64, error) {
	resolved, ok := s.Snap(on)
	if !ok {
		return 0, fmt.Errorf("%s on %s: %w", s.ticker, on, ErrNotFound)
	}
	windowStart, ok := s.Snap(resolved.Add(-xDays))
	if !ok {
		return 0, fmt.Errorf("%s has no data for the last %d days before %s: %w", s.ticker, xDays, resolved, ErrNotFound)
	}

	var sum float64
	var n int
	for _, price := range s.prices.Between(windowStart, resolved) {
		sum += price
		n++
	}
	return sum / float64(n), nil
}

// GainLoss returns the price change between two dates, both snapped.
func (s *Stock) GainLoss(start, end date.Date) (float64, error) {
	from, to, err := s.snapRange(start, end)
	if err != nil {
		return 0, err
	}
	startPrice, _ := s.prices.Get(from)
	endPrice, _ := s.prices.Get(to)
	return endPrice - startPrice, nil
}

// Crossovers returns, in ascending order, every date in [start, end] whose
// closing price is strictly above its own xDays moving average.
func (s *Stock) Crossovers(start, end date.Date, xDays int) ([]date.Date, error) {
	from, to, err := s.snapRange(start, end)
	if err != nil {
		return nil, err
	}

	var crossings []date.Date
	for on, price := range s.prices.Between(from, to) {
		avg, err := s.MovingAverage(on, xDays)
		if err != nil {
			return nil, err
		}
		if price > avg {
			crossings = append(crossings, on)
		}
	}
	return crossings, nil
}

// snapRange snaps both endpoints, requiring data on each and start not after
// end.
func (s *Stock) snapRange(start, end date.Date) (from, to date.Date, err error) {
	from, okFrom := s.Snap(start)
	to, okTo := s.Snap(end)
	if !okFrom || !okTo {
		return from, to, fmt.Errorf("%s between %s and %s: %w", s.ticker, start, end, ErrNotFound)
	}
	if from.After(to) {
		return from, to, fmt.Errorf("start date %s must be before end date %s: %w", from, to, ErrInvalidArgument)
	}
	return from, to, nil
}

// AppendClosing records a newer closing price. Dates older than the latest
// recorded one, or already present, are rejected.
func (s *Stock) AppendClosing(price float64, on date.Date) error {
	if s.prices.Len() > 0 {
		latest, _ := s.prices.Latest()
		if on.Before(latest) || hasValue(s.prices, on) {
			return fmt.Errorf("closing for %s on %s: only newer dates can be appended: %w", s.ticker, on, ErrInvalidArgument)
		}
	}
	s.prices.Append(on, price)
	return nil
}

// PerformanceOverTime renders an ASCII chart of the stock's closing prices
// between start and end. See renderChart for the bucketing rules.
func (s *Stock) PerformanceOverTime(start, end date.Date) (string, error) {
	if err := s.checkChartRange(start, end); err != nil {
		return "", err
	}
	title := fmt.Sprintf("Performance of stock '%s' from %s to %s", s.ticker, start, end)
	return renderChart(title, start, end, func(on date.Date) (float64, bool, error) {
		price, err := s.ClosingPrice(on)
		if err != nil || price <= 0 {
			return 0, false, nil
		}
		return price, true, nil
	})
}

func (s *Stock) checkChartRange(start, end date.Date) error {
	if !end.After(start) {
		return fmt.Errorf("end date %s must come after start date %s: %w", end, start, ErrInvalidArgument)
	}
	if !s.hasPositiveClose(start) {
		return fmt.Errorf("no data available for the start date %s: %w", start, ErrInvalidArgument)
	}
	if !s.hasPositiveClose(end) {
		return fmt.Errorf("no data available for the end date %s: %w", end, ErrInvalidArgument)
	}
	return nil
}

// hasPositiveClose reports whether the date, after snapping, carries a
// strictly positive closing price. It is the same predicate the chart
// sampler applies, so a validated endpoint is always plottable.
func (s *Stock) hasPositiveClose(on date.Date) bool {
	resolved, ok := s.Snap(on)
	if !ok {
		return false
	}
	price, _ := s.prices.Get(resolved)
	return price > 0
}
