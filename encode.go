package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shlok12343/stockfolio/date"
)

// The persisted ledger format is line oriented, one record per line:
//
//	name:<portfolio name>
//	stocks:
//	ticker:<SYMBOL>:quantity:<signed decimal>:dateAdded:<yyyy-MM-dd>
//
// Every delta of every stock's event log becomes one ticker line, so loading
// replays the full acquisition and disposal history.

// Save writes the portfolio ledger to w.
func (p *SmartPortfolio) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "name:%s\n", p.Name())
	fmt.Fprintln(bw, "stocks:")
	for _, ticker := range p.tickers {
		for on, delta := range p.holdings[ticker].deltas.Values() {
			fmt.Fprintf(bw, "ticker:%s:quantity:%s:dateAdded:%s\n",
				ticker, strconv.FormatFloat(delta, 'f', -1, 64), on)
		}
	}
	return bw.Flush()
}

// Load reads a ledger from r into the portfolio. Records are replayed
// through AddLot and RemoveLot so ledger invariants stay enforced; stocks
// are hydrated through the gateway the first time their ticker appears.
func (p *SmartPortfolio) Load(r io.Reader, g QuoteGateway) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "name:"):
			p.SetName(strings.TrimPrefix(line, "name:"))
		case strings.HasPrefix(line, "ticker:"):
			if err := p.loadRecord(line, g); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func (p *SmartPortfolio) loadRecord(line string, g QuoteGateway) error {
	parts := strings.Split(line, ":")
	if len(parts) != 6 || parts[2] != "quantity" || parts[4] != "dateAdded" {
		return fmt.Errorf("malformed ledger record %q: %w", line, ErrInvalidArgument)
	}
	ticker := parts[1]
	quantity, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return fmt.Errorf("malformed quantity in record %q: %w", line, err)
	}
	added, err := date.Parse(parts[5])
	if err != nil {
		return fmt.Errorf("malformed date in record %q: %w", line, err)
	}

	stock := p.Stock(ticker)
	if stock == nil {
		if stock, err = MakeStock(g, ticker); err != nil {
			return err
		}
	}
	switch {
	case quantity > 0:
		return p.AddLot(stock, quantity, added)
	case quantity < 0:
		return p.RemoveLot(stock, -quantity, added)
	}
	return nil
}
