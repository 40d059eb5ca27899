package renderer

import (
	"testing"

	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/date"
)

func flatPrices(t *testing.T, from, to date.Date, price float64) *date.History[float64] {
	t.Helper()
	h := new(date.History[float64])
	for d := from; !d.After(to); d = d.Add(1) {
		h.Append(d, price)
	}
	return h
}

func newTestPortfolio(t *testing.T) *stockfolio.SmartPortfolio {
	t.Helper()
	from, to := date.New(2024, 1, 1), date.New(2024, 1, 31)
	aapl, err := stockfolio.NewStock(nil, "AAPL", flatPrices(t, from, to, 150))
	if err != nil {
		t.Fatal(err)
	}
	googl, err := stockfolio.NewStock(nil, "GOOGL", flatPrices(t, from, to, 2500))
	if err != nil {
		t.Fatal(err)
	}

	p := stockfolio.NewSmartPortfolio("retirement", "pat")
	if err := p.AddLot(aapl, 10, date.New(2024, 1, 2)); err != nil {
		t.Fatal(err)
	}
	if err := p.AddLot(googl, 2, date.New(2024, 1, 2)); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderDistribution(t *testing.T) {
	p := newTestPortfolio(t)
	report, err := p.DistributionOnDate(date.New(2024, 1, 15))
	if err != nil {
		t.Fatal(err)
	}

	want := `# Distribution of 'retirement' on 2024-01-15

| Ticker | Value |
|:---|---:|
| AAPL | $1,500.00 |
| GOOGL | $5,000.00 |
| **Total** | **$6,500.00** |
`
	if got := RenderDistribution(report); got != want {
		t.Errorf("RenderDistribution:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderHoldings(t *testing.T) {
	p := newTestPortfolio(t)
	report := p.Holdings(date.New(2024, 1, 15))

	want := `# Holdings of 'retirement' on 2024-01-15

| Ticker | Quantity |
|:---|---:|
| AAPL | 10 |
| GOOGL | 2 |
`
	if got := RenderHoldings(report); got != want {
		t.Errorf("RenderHoldings:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderRebalancePlan(t *testing.T) {
	p := newTestPortfolio(t)
	plan, err := p.ProposeRebalance(map[string]float64{"AAPL": 0.5, "GOOGL": 0.5}, date.New(2024, 1, 15))
	if err != nil {
		t.Fatal(err)
	}

	want := `# Rebalancing plan for 2024-01-15

| Ticker | Action | Shares | Current | Target |
|:---|:---|---:|---:|---:|
| AAPL | buy | 11.6667 | $1,500.00 | $3,250.00 |
| GOOGL | sell | 0.7000 | $5,000.00 | $3,250.00 |
`
	if got := RenderRebalancePlan(plan); got != want {
		t.Errorf("RenderRebalancePlan:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
