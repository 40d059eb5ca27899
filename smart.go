package stockfolio

import (
	"fmt"

	"github.com/shlok12343/stockfolio/date"
)

// SmartPortfolio extends Portfolio with value distribution reporting,
// adaptive performance charting, rebalancing and persistence.
type SmartPortfolio struct {
	*Portfolio
}

// NewSmartPortfolio returns an empty smart portfolio with the given name and
// owner.
func NewSmartPortfolio(name, owner string) *SmartPortfolio {
	return &SmartPortfolio{Portfolio: NewPortfolio(name, owner)}
}

// DistributionOnDate reports each positively-valued stock's contribution to
// the total portfolio value on the given date.
func (p *SmartPortfolio) DistributionOnDate(on date.Date) (*DistributionReport, error) {
	total, err := p.TotalValue(on)
	if err != nil {
		return nil, err
	}
	report := &DistributionReport{Portfolio: p.Name(), Date: on, Total: USD(total)}
	if total == 0 {
		return report, nil
	}
	for _, ticker := range p.tickers {
		if p.QuantityAsOf(ticker, on) <= 0 {
			continue
		}
		value, err := p.ValueOfStock(ticker, on)
		if err != nil {
			return nil, err
		}
		if value > 0 {
			report.Entries = append(report.Entries, DistributionEntry{Ticker: ticker, Value: USD(value)})
		}
	}
	return report, nil
}

// Holdings reports the positively-held positions on the given date.
func (p *SmartPortfolio) Holdings(on date.Date) *HoldingsReport {
	return &HoldingsReport{Portfolio: p.Name(), Date: on, Positions: p.HoldingsAsOf(on)}
}

// PrintHoldings renders the holdings report as plain text.
func (p *SmartPortfolio) PrintHoldings(on date.Date) string {
	return p.Holdings(on).String()
}

// PerformanceOverTime renders an ASCII chart of the total portfolio value
// between start and end. See renderChart for the bucketing rules.
func (p *SmartPortfolio) PerformanceOverTime(start, end date.Date) (string, error) {
	if !end.After(start) {
		return "", fmt.Errorf("end date %s must come after start date %s: %w", end, start, ErrInvalidArgument)
	}
	if !p.anyPriceData(start) {
		return "", fmt.Errorf("no data available for the start date %s: %w", start, ErrInvalidArgument)
	}
	if !p.anyPriceData(end) {
		return "", fmt.Errorf("no data available for the end date %s: %w", end, ErrInvalidArgument)
	}

	title := fmt.Sprintf("Performance of portfolio '%s' from %s to %s", p.Name(), start, end)
	return renderChart(title, start, end, func(on date.Date) (float64, bool, error) {
		if !p.anyPriceData(on) {
			return 0, false, nil
		}
		value, err := p.TotalValue(on)
		if err != nil {
			return 0, false, err
		}
		return value, true, nil
	})
}

// anyPriceData reports whether at least one stock in the ledger has a
// closing price on the given date.
func (p *SmartPortfolio) anyPriceData(on date.Date) bool {
	for stock := range p.Stocks() {
		if _, ok := stock.Snap(on); ok {
			return true
		}
	}
	return false
}
