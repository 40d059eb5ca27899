package alphavantage

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shlok12343/stockfolio/date"
)

func records(t *testing.T, csvText string) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(csvText))
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err != nil {
		t.Fatalf("header: %v", err)
	}
	all, err := r.ReadAll()
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	return all
}

func TestParseDailySeries(t *testing.T) {
	csvText := "timestamp,open,high,low,close,volume\n" +
		"2024-05-03,186.6450,187.0000,182.6600,183.3800,163224109\n" +
		"2024-05-02,172.5100,173.4150,170.8900,173.0300,94214915\n"

	history, err := parseDailySeries(records(t, csvText))
	if err != nil {
		t.Fatalf("parseDailySeries: %v", err)
	}
	if history.Len() != 2 {
		t.Fatalf("Len() = %d want 2", history.Len())
	}
	if v, ok := history.Get(date.MustParse("2024-05-03")); !ok || v != 183.38 {
		t.Errorf("close on 2024-05-03 = %v, %v want 183.38", v, ok)
	}
	if v, ok := history.Get(date.MustParse("2024-05-02")); !ok || v != 173.03 {
		t.Errorf("close on 2024-05-02 = %v, %v want 173.03", v, ok)
	}
	// Chronological regardless of response order.
	if first, _ := history.First(); first != date.MustParse("2024-05-02") {
		t.Errorf("First() = %v want 2024-05-02", first)
	}
}

func TestParseDailySeriesBadClose(t *testing.T) {
	csvText := "timestamp,open,high,low,close,volume\n" +
		"2024-05-03,186,187,182,not-a-price,163224109\n"
	if _, err := parseDailySeries(records(t, csvText)); err == nil {
		t.Error("parseDailySeries accepted a non-numeric close")
	}
}

func TestParseGlobalQuote(t *testing.T) {
	payload := `{
	  "Global Quote": {
	    "01. symbol": "AAPL",
	    "05. price": "189.8400",
	    "07. latest trading day": "2024-05-03"
	  }
	}`
	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatal(err)
	}

	price, on, err := parseGlobalQuote(jobj, "AAPL")
	if err != nil {
		t.Fatalf("parseGlobalQuote: %v", err)
	}
	if price != 189.84 {
		t.Errorf("price = %v want 189.84", price)
	}
	if on != date.MustParse("2024-05-03") {
		t.Errorf("day = %v want 2024-05-03", on)
	}
}

func TestParseGlobalQuoteMissingField(t *testing.T) {
	var jobj any
	if err := json.Unmarshal([]byte(`{"Global Quote": {}}`), &jobj); err != nil {
		t.Fatal(err)
	}
	if _, _, err := parseGlobalQuote(jobj, "AAPL"); err == nil {
		t.Error("parseGlobalQuote accepted an empty quote")
	}
}
