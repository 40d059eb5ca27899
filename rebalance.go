package stockfolio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shlok12343/stockfolio/date"
	"github.com/shopspring/decimal"
)

// percentTolerance is how far the target fractions may stray from summing to
// exactly 1.
const percentTolerance = 0.001

// TradeAction says which way a rebalancing trade goes.
type TradeAction int

const (
	Hold TradeAction = iota
	Buy
	Sell
)

func (a TradeAction) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "hold"
	}
}

// Trade is one stock's adjustment in a rebalancing plan. Shares may be
// fractional.
type Trade struct {
	Ticker  string
	Action  TradeAction
	Shares  float64
	Current Money
	Target  Money
}

// RebalancePlan is a previewable set of trades that moves the portfolio to a
// target distribution. It is computed without mutating the ledger; Apply
// executes it through the validated AddLot/RemoveLot path.
type RebalancePlan struct {
	portfolio *SmartPortfolio
	on        date.Date
	Trades    []Trade
}

// ProposeRebalance computes the trades needed so that each held stock's
// value matches targets[ticker] (a fraction of total value) on the given
// date. Every held ticker needs a target, and the targets must sum to 1
// within the tolerance.
func (p *SmartPortfolio) ProposeRebalance(targets map[string]float64, on date.Date) (*RebalancePlan, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("no stock available: %w", ErrInvalidArgument)
	}

	var sum float64
	for _, ticker := range p.tickers {
		fraction, ok := targets[ticker]
		if !ok {
			return nil, fmt.Errorf("no target percentage for %s: %w", ticker, ErrInvalidArgument)
		}
		sum += fraction
	}
	if math.Abs(sum-1.0) > percentTolerance {
		return nil, fmt.Errorf("target percentages sum to %.1f%%, not 100%%: %w", sum*100, ErrInvalidArgument)
	}

	total, err := p.TotalValue(on)
	if err != nil {
		return nil, err
	}

	plan := &RebalancePlan{portfolio: p, on: on}
	for _, ticker := range p.tickers {
		current, err := p.ValueOfStock(ticker, on)
		if err != nil {
			return nil, err
		}
		target := total * targets[ticker]
		price, err := p.holdings[ticker].stock.ClosingPrice(on)
		if err != nil {
			return nil, err
		}

		trade := Trade{Ticker: ticker, Current: USD(current), Target: USD(target)}
		// Share counts are derived in decimals so a plan and its preview
		// agree to the cent.
		diff := decimal.NewFromFloat(target).Sub(decimal.NewFromFloat(current))
		shares, _ := diff.Abs().Div(decimal.NewFromFloat(price)).Float64()
		switch {
		case current < target:
			trade.Action, trade.Shares = Buy, shares
		case current > target:
			trade.Action, trade.Shares = Sell, shares
		}
		plan.Trades = append(plan.Trades, trade)
	}
	return plan, nil
}

// On returns the valuation date the plan was computed for.
func (plan *RebalancePlan) On() date.Date { return plan.on }

// Apply executes the plan's trades against the ledger. Hold trades are
// no-ops.
func (plan *RebalancePlan) Apply() error {
	for _, trade := range plan.Trades {
		stock := plan.portfolio.Stock(trade.Ticker)
		var err error
		switch trade.Action {
		case Buy:
			err = plan.portfolio.AddLot(stock, trade.Shares, plan.on)
		case Sell:
			err = plan.portfolio.RemoveLot(stock, trade.Shares, plan.on)
		}
		if err != nil {
			return fmt.Errorf("applying rebalance of %s: %w", trade.Ticker, err)
		}
	}
	return nil
}

// Rebalance drives the interactive rebalancing protocol: one target
// percentage prompt per held stock in ledger order, a preview, and a yes/no
// confirmation gate. Invalid percentages and cancellations leave the ledger
// untouched; informational outcomes are written to out, not returned as
// errors.
func (p *SmartPortfolio) Rebalance(in io.Reader, on date.Date, out io.Writer) error {
	if p.Len() == 0 {
		return fmt.Errorf("no stock available: %w", ErrInvalidArgument)
	}

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}

	targets := make(map[string]float64, p.Len())
	var sum float64
	for stock := range p.Stocks() {
		fmt.Fprintf(out, "Enter the target percentage for %s:\n", stock.Ticker())
		token, err := next()
		if err != nil {
			return err
		}
		percent, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fmt.Errorf("invalid percentage %q: %w", token, ErrInvalidArgument)
		}
		targets[stock.Ticker()] = percent / 100
		sum += percent / 100
	}

	if math.Abs(sum-1.0) > percentTolerance {
		fmt.Fprintln(out, "The target percentages do not add up to 100%. Please try again.")
		return nil
	}

	plan, err := p.ProposeRebalance(targets, on)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "The new distribution will be:")
	for _, trade := range plan.Trades {
		fmt.Fprintf(out, "%s : Current Value = %s, Target Value = %s\n", trade.Ticker, trade.Current, trade.Target)
	}

	fmt.Fprintln(out, "Do you want to proceed with rebalancing? (enter yes to proceed, anything else to cancel)")
	answer, err := next()
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		fmt.Fprintln(out, "Rebalancing cancelled.")
		return nil
	}

	if err := plan.Apply(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Portfolio rebalanced successfully.")
	return nil
}
