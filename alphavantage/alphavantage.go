// Package alphavantage implements the stockfolio.QuoteGateway interface on
// top of the Alpha Vantage HTTP API (https://www.alphavantage.co).
//
// Responses are cached on disk for the rest of the day (see diskCache), so
// repeated commands do not exhaust the free-tier request quota.
package alphavantage

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/date"
)

const baseURL = "https://www.alphavantage.co/query"

// Client fetches quote data from Alpha Vantage.
type Client struct {
	apiKey string
	http   *http.Client

	tickers map[string]struct{} // lazily fetched ticker universe
}

// verify the gateway contract at compile time.
var _ stockfolio.QuoteGateway = (*Client)(nil)

// New returns a Client using the given API key and a daily disk-caching
// HTTP transport.
func New(apiKey string) *Client {
	return &Client{apiKey: apiKey, http: newCachingClient()}
}

// endpoint builds a query URL for the given function and extra parameters.
func (c *Client) endpoint(function string, params map[string]string) string {
	q := url.Values{}
	q.Set("function", function)
	q.Set("apikey", c.apiKey)
	for k, v := range params {
		q.Set(k, v)
	}
	return baseURL + "?" + q.Encode()
}

// fetchCSV issues a GET and returns the parsed CSV records without the
// header row.
func (c *Client) fetchCSV(addr string) ([][]string, error) {
	resp, err := c.http.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: unexpected status %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	if _, err := reader.Read(); err != nil { // skip header
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return reader.ReadAll()
}

// FetchHistory returns the full daily closing history for a ticker using
// the TIME_SERIES_DAILY endpoint in CSV form.
func (c *Client) FetchHistory(ticker string) (*date.History[float64], error) {
	addr := c.endpoint("TIME_SERIES_DAILY", map[string]string{
		"symbol":     ticker,
		"outputsize": "full",
		"datatype":   "csv",
	})
	records, err := c.fetchCSV(addr)
	if err != nil {
		return nil, fmt.Errorf("alphavantage: fetching history for %s: %w", ticker, err)
	}

	history, err := parseDailySeries(records)
	if err != nil {
		return nil, fmt.Errorf("alphavantage: history for %s: %w", ticker, err)
	}
	if history.Len() == 0 {
		return nil, fmt.Errorf("alphavantage: %s: %w", ticker, stockfolio.ErrNoPriceData)
	}
	return history, nil
}

// parseDailySeries converts TIME_SERIES_DAILY CSV records
// (timestamp,open,high,low,close,volume) into a price history.
func parseDailySeries(records [][]string) (*date.History[float64], error) {
	history := new(date.History[float64])
	for _, record := range records {
		if len(record) < 5 {
			continue
		}
		on, err := date.Parse(record[0])
		if err != nil {
			return nil, err
		}
		close, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad close %q on %s: %w", record[4], on, err)
		}
		history.Append(on, close)
	}
	return history, nil
}

// IsKnownTicker reports whether symbol appears in Alpha Vantage's listing
// of active tickers. The listing is fetched once per Client; fetch failures
// are logged and reported as unknown.
func (c *Client) IsKnownTicker(symbol string) bool {
	if c.tickers == nil {
		tickers, err := c.fetchListing()
		if err != nil {
			log.Printf("alphavantage: could not fetch ticker listing: %v", err)
			return false
		}
		c.tickers = tickers
	}
	_, ok := c.tickers[symbol]
	return ok
}

// fetchListing downloads the LISTING_STATUS universe (one symbol per line,
// first CSV column).
func (c *Client) fetchListing() (map[string]struct{}, error) {
	records, err := c.fetchCSV(c.endpoint("LISTING_STATUS", nil))
	if err != nil {
		return nil, err
	}
	tickers := make(map[string]struct{}, len(records))
	for _, record := range records {
		if len(record) > 0 && record[0] != "" {
			tickers[record[0]] = struct{}{}
		}
	}
	return tickers, nil
}
