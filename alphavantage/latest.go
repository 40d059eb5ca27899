package alphavantage

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shlok12343/stockfolio/date"
)

// Latest returns the most recent closing price and its trading day for a
// ticker, from the GLOBAL_QUOTE endpoint.
//
// The response nests everything under awkward numbered keys:
//
//	{"Global Quote": {"01. symbol": "AAPL", ..., "05. price": "189.8400",
//	  "07. latest trading day": "2024-05-03", ...}}
//
// so the fields are plucked out with jsonpath rather than a struct.
func (c *Client) Latest(ticker string) (price float64, on date.Date, err error) {
	addr := c.endpoint("GLOBAL_QUOTE", map[string]string{"symbol": ticker})

	resp, err := c.http.Get(addr)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alphavantage: quote for %s: %w", ticker, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, date.Date{}, fmt.Errorf("alphavantage: quote for %s: unexpected status %s", ticker, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return 0, date.Date{}, fmt.Errorf("alphavantage: quote for %s: %w", ticker, err)
	}
	return parseGlobalQuote(jobj, ticker)
}

func parseGlobalQuote(jobj any, ticker string) (float64, date.Date, error) {
	get := func(path string) (string, error) {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return "", fmt.Errorf("alphavantage: quote for %s: %q %w", ticker, path, err)
		}
		// jsonpath may answer with a one-element list; unwrap it.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		str, ok := jval.(string)
		if !ok {
			return "", fmt.Errorf("alphavantage: quote for %s: %q is %v, not a string", ticker, path, jval)
		}
		return str, nil
	}

	priceStr, err := get(`$["Global Quote"]["05. price"]`)
	if err != nil {
		return 0, date.Date{}, err
	}
	dayStr, err := get(`$["Global Quote"]["07. latest trading day"]`)
	if err != nil {
		return 0, date.Date{}, err
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alphavantage: quote for %s: bad price %q: %w", ticker, priceStr, err)
	}
	on, err := date.Parse(dayStr)
	if err != nil {
		return 0, date.Date{}, fmt.Errorf("alphavantage: quote for %s: %w", ticker, err)
	}
	return price, on, nil
}
