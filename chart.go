package stockfolio

import (
	"fmt"
	"strings"

	"github.com/shlok12343/stockfolio/date"
)

// maxChartRows bounds the number of sampled dates; beyond it the chart is
// refused with an informational message rather than an error.
const maxChartRows = 30

// maxAsterisks is the width of the longest bar.
const maxAsterisks = 50

// chartValue produces the value plotted for a date. ok reports whether the
// date has data at all; dates without data are skipped silently.
type chartValue func(on date.Date) (value float64, ok bool, err error)

// renderChart walks from start to end in adaptive time buckets (daily up to
// 30 days, monthly up to 730 days, yearly beyond) and renders one line of
// asterisks per sampled date, scaled so the largest value takes 50 marks.
//
// Informational outcomes ("no data in range", "span too long") are returned
// as the chart text itself, not as errors.
func renderChart(title string, start, end date.Date, value chartValue) (string, error) {
	totalDays := start.DaysUntil(end)

	var step func(date.Date) date.Date
	var layout string
	switch {
	case totalDays <= 5:
		return "", fmt.Errorf("time span too short: %w", ErrInvalidArgument)
	case totalDays <= 30:
		step, layout = func(d date.Date) date.Date { return d.Add(1) }, "02 Jan 2006"
	case totalDays <= 730:
		step, layout = func(d date.Date) date.Date { return d.AddMonths(1) }, "Jan 2006"
	default:
		step, layout = func(d date.Date) date.Date { return d.AddYears(1) }, "2006"
	}

	var sampled []date.Date
	var values []float64
	for current := start; !current.After(end); current = step(current) {
		v, ok, err := value(current)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		sampled = append(sampled, current)
		values = append(values, v)
	}

	if len(sampled) == 0 {
		return "No data available for the given date range.", nil
	}
	if len(sampled) > maxChartRows {
		return "Entered time span too long", nil
	}

	var maxValue float64
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}
	scale := maxValue / maxAsterisks
	if scale == 0 {
		scale = 1
	}

	var chart strings.Builder
	chart.WriteString(title)
	chart.WriteByte('\n')
	for i, on := range sampled {
		// Negative values draw an empty bar.
		bar := max(int(values[i]/scale), 0)
		fmt.Fprintf(&chart, "%s: %s\n", on.Format(layout), strings.Repeat("*", bar))
	}
	fmt.Fprintf(&chart, "Scale: * = $%.2f units\n", scale)
	return chart.String(), nil
}
