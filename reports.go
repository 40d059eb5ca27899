package stockfolio

import (
	"fmt"
	"strings"

	"github.com/shlok12343/stockfolio/date"
)

// DistributionReport describes how the portfolio value is split across
// holdings on a date. Entries keep the ledger's insertion order.
type DistributionReport struct {
	Portfolio string
	Date      date.Date
	Entries   []DistributionEntry
	Total     Money
}

// DistributionEntry is one stock's share of the portfolio value.
type DistributionEntry struct {
	Ticker string
	Value  Money
}

// String renders the report as plain text. A portfolio with no value on the
// date yields a single informational line.
func (r *DistributionReport) String() string {
	if r.Total.IsZero() {
		return fmt.Sprintf("The portfolio has no value on %s", r.Date)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Distribution of value on %s:\n", r.Date)
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Ticker, e.Value)
	}
	fmt.Fprintf(&b, "Total Portfolio Value: %s", r.Total)
	return b.String()
}

// HoldingsReport lists the positively-held positions on a date.
type HoldingsReport struct {
	Portfolio string
	Date      date.Date
	Positions []Position
}

// String renders the report in the compact '{TICKER, qty; }' form.
func (r *HoldingsReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "'%s'\n{", r.Portfolio)
	for _, pos := range r.Positions {
		fmt.Fprintf(&b, "%s, %v; ", pos.Stock.Ticker(), pos.Quantity)
	}
	b.WriteString("}")
	return b.String()
}
