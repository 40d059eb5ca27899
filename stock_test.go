package stockfolio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shlok12343/stockfolio/date"
)

func TestClosingPriceSnapsToNearestTradingDay(t *testing.T) {
	// Friday 2024-01-05 and Monday 2024-01-08 have data; the weekend does not.
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-05": 100,
		"2024-01-08": 110,
	})

	tests := []struct {
		name string
		day  string
		want float64
	}{
		{name: "exact date", day: "2024-01-05", want: 100},
		{name: "saturday snaps forward first", day: "2024-01-06", want: 100}, // +1 missing, -1 hits friday
		{name: "sunday snaps to monday", day: "2024-01-07", want: 110},
		{name: "two days after monday", day: "2024-01-10", want: 110},
	}
	for _, tc := range tests {
		got, err := s.ClosingPrice(date.MustParse(tc.day))
		if err != nil {
			t.Errorf("%s: ClosingPrice(%s) error: %v", tc.name, tc.day, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: ClosingPrice(%s) = %v want %v", tc.name, tc.day, got, tc.want)
		}
	}
}

func TestClosingPriceSnapOrder(t *testing.T) {
	// Both +1 and -1 have data; +1 wins per the fixed search order.
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-04": 90,
		"2024-01-06": 95,
	})
	got, err := s.ClosingPrice(date.MustParse("2024-01-05"))
	if err != nil {
		t.Fatalf("ClosingPrice: %v", err)
	}
	if got != 95 {
		t.Errorf("ClosingPrice = %v, want 95 (the +1 day candidate)", got)
	}
}

func TestClosingPriceNotFound(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{"2024-01-05": 100})
	_, err := s.ClosingPrice(date.MustParse("2024-01-10"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ClosingPrice far from data = %v, want ErrNotFound", err)
	}
}

func TestMovingAverage(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-01": 10,
		"2024-01-02": 20,
		"2024-01-03": 30,
		"2024-01-04": 40,
	})

	got, err := s.MovingAverage(date.MustParse("2024-01-04"), 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if got != 25 { // (10+20+30+40)/4, closed interval includes both ends
		t.Errorf("MovingAverage = %v want 25", got)
	}
}

func TestMovingAverageZeroDaysIsClosingPrice(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-01": 10,
		"2024-01-02": 20,
		"2024-01-03": 30,
	})
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		on := date.MustParse(day)
		avg, err := s.MovingAverage(on, 0)
		if err != nil {
			t.Fatalf("MovingAverage(%s, 0): %v", day, err)
		}
		price, err := s.ClosingPrice(on)
		if err != nil {
			t.Fatalf("ClosingPrice(%s): %v", day, err)
		}
		if avg != price {
			t.Errorf("MovingAverage(%s, 0) = %v want ClosingPrice %v", day, avg, price)
		}
	}
}

func TestMovingAverageWindowStartMissing(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{"2024-01-10": 10})
	_, err := s.MovingAverage(date.MustParse("2024-01-10"), 30)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("MovingAverage with absent window start = %v, want ErrNotFound", err)
	}
}

func TestGainLoss(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 130,
	})

	got, err := s.GainLoss(date.MustParse("2024-01-01"), date.MustParse("2024-02-01"))
	if err != nil {
		t.Fatalf("GainLoss: %v", err)
	}
	if got != 30 {
		t.Errorf("GainLoss = %v want 30", got)
	}

	// Matches the closing price difference for any valid pair.
	p1, _ := s.ClosingPrice(date.MustParse("2024-01-01"))
	p2, _ := s.ClosingPrice(date.MustParse("2024-02-01"))
	if got != p2-p1 {
		t.Errorf("GainLoss = %v want ClosingPrice difference %v", got, p2-p1)
	}
}

func TestGainLossInvertedRange(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-01": 100,
		"2024-02-01": 130,
	})
	_, err := s.GainLoss(date.MustParse("2024-02-01"), date.MustParse("2024-01-01"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GainLoss with start after end = %v, want ErrInvalidArgument", err)
	}
}

func TestCrossovers(t *testing.T) {
	// Rising prices stay above their trailing average, falling ones below.
	s := newTestStock(t, "AAPL", map[string]float64{
		"2024-01-01": 10,
		"2024-01-02": 20,
		"2024-01-03": 30,
		"2024-01-04": 20,
		"2024-01-05": 5,
	})

	got, err := s.Crossovers(date.MustParse("2024-01-02"), date.MustParse("2024-01-05"), 1)
	if err != nil {
		t.Fatalf("Crossovers: %v", err)
	}
	want := []date.Date{date.MustParse("2024-01-02"), date.MustParse("2024-01-03")}
	if len(got) != len(want) {
		t.Fatalf("Crossovers = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Crossovers[%d] = %v want %v", i, got[i], want[i])
		}
	}
}

func TestAppendClosing(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{"2024-01-05": 100})

	if err := s.AppendClosing(105, date.MustParse("2024-01-08")); err != nil {
		t.Fatalf("AppendClosing newer date: %v", err)
	}
	if err := s.AppendClosing(99, date.MustParse("2024-01-02")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AppendClosing older date = %v, want ErrInvalidArgument", err)
	}
	if err := s.AppendClosing(106, date.MustParse("2024-01-08")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AppendClosing duplicate date = %v, want ErrInvalidArgument", err)
	}

	got, err := s.ClosingPrice(date.MustParse("2024-01-08"))
	if err != nil || got != 105 {
		t.Errorf("ClosingPrice after append = %v, %v want 105", got, err)
	}
}

func TestStockPerformanceOverTime(t *testing.T) {
	s := newTestStock(t, "AAPL", flatPrices("2024-01-01", "2024-01-15", 100))

	chart, err := s.PerformanceOverTime(date.MustParse("2024-01-01"), date.MustParse("2024-01-15"))
	if err != nil {
		t.Fatalf("PerformanceOverTime: %v", err)
	}
	if !strings.HasPrefix(chart, "Performance of stock 'AAPL' from 2024-01-01 to 2024-01-15") {
		t.Errorf("chart title missing:\n%s", chart)
	}
	// All values equal the max, so every line gets the full 50 asterisks.
	if !strings.Contains(chart, "01 Jan 2024: "+strings.Repeat("*", 50)) {
		t.Errorf("chart rows wrong:\n%s", chart)
	}
	if !strings.Contains(chart, "Scale: * = $2.00 units") {
		t.Errorf("chart scale wrong:\n%s", chart)
	}
}

func TestStockPerformanceMonthEndBuckets(t *testing.T) {
	s := newTestStock(t, "AAPL", flatPrices("2024-01-31", "2024-08-31", 100))

	chart, err := s.PerformanceOverTime(date.MustParse("2024-01-31"), date.MustParse("2024-08-31"))
	if err != nil {
		t.Fatalf("PerformanceOverTime: %v", err)
	}
	// Monthly stepping from Jan 31 clamps to month ends (Feb 29, then the
	// 29th onwards), so every month gets exactly one sample.
	for _, label := range []string{
		"Jan 2024: ", "Feb 2024: ", "Mar 2024: ", "Apr 2024: ",
		"May 2024: ", "Jun 2024: ", "Jul 2024: ", "Aug 2024: ",
	} {
		if !strings.Contains(chart, label) {
			t.Errorf("chart is missing the %q sample:\n%s", label, chart)
		}
	}
	if got := strings.Count(chart, "2024: "); got != 8 {
		t.Errorf("chart has %d samples, want 8:\n%s", got, chart)
	}
}

func TestStockChartZeroPriceEndpoint(t *testing.T) {
	prices := flatPrices("2024-01-02", "2024-01-20", 100)
	prices["2024-01-02"] = 0

	s := newTestStock(t, "AAPL", prices)
	_, err := s.PerformanceOverTime(date.MustParse("2024-01-02"), date.MustParse("2024-01-20"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero-price start endpoint = %v, want ErrInvalidArgument", err)
	}
}

func TestStockPerformanceSpanTooShort(t *testing.T) {
	s := newTestStock(t, "AAPL", flatPrices("2024-01-01", "2024-01-10", 100))
	_, err := s.PerformanceOverTime(date.MustParse("2024-01-01"), date.MustParse("2024-01-05"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("5-day span = %v, want ErrInvalidArgument", err)
	}
}

func TestNewStockValidatesTicker(t *testing.T) {
	g := &fakeGateway{histories: map[string]map[string]float64{
		"AAPL": {"2024-01-05": 100},
	}}

	if _, err := NewStock(g, "AAPL", nil); err != nil {
		t.Errorf("NewStock(known) error: %v", err)
	}
	if _, err := NewStock(g, "NOPE", nil); !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("NewStock(unknown) = %v, want ErrUnknownTicker", err)
	}
}

func TestMakeStock(t *testing.T) {
	g := &fakeGateway{histories: map[string]map[string]float64{
		"AAPL":  {"2024-01-05": 100},
		"EMPTY": {},
	}}

	s, err := MakeStock(g, "AAPL")
	if err != nil {
		t.Fatalf("MakeStock: %v", err)
	}
	if price, err := s.ClosingPrice(date.MustParse("2024-01-05")); err != nil || price != 100 {
		t.Errorf("ClosingPrice = %v, %v want 100", price, err)
	}

	if _, err := MakeStock(g, "EMPTY"); !errors.Is(err, ErrNoPriceData) {
		t.Errorf("MakeStock(empty history) = %v, want ErrNoPriceData", err)
	}
}

func TestMovingAverageIsFinite(t *testing.T) {
	s := newTestStock(t, "AAPL", map[string]float64{"2024-01-05": 100})
	avg, err := s.MovingAverage(date.MustParse("2024-01-05"), 0)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		t.Errorf("MovingAverage = %v, want finite", avg)
	}
}
