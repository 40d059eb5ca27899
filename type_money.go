package stockfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a USD amount used for report display. Arithmetic is done
// in decimals to keep cent rounding exact.
type Money struct {
	value decimal.Decimal
}

// USD returns the Money for a float amount.
func USD(v float64) Money { return Money{value: decimal.NewFromFloat(v)} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) IsZero() bool      { return m.value.IsZero() }

// Float64 returns the amount rounded to cents.
func (m Money) Float64() float64 {
	f, _ := m.value.Round(2).Float64()
	return f
}

// String formats the amount as US dollars, e.g. "$6,500.00".
func (m Money) String() string {
	cur := money.GetCurrency(money.USD)
	cents := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(cents.IntPart(), money.USD).Display()
}

// round2 rounds a float to 2 decimal places through decimal arithmetic, so
// quantities and values match their persisted and displayed forms.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
