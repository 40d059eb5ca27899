// Package stockfolio implements a lot-based stock portfolio ledger with
// time-indexed analytics: date-snapped closing price lookups, moving
// averages, crossovers, gain/loss, value distribution, adaptive ASCII
// performance charts and proportional rebalancing.
//
// The package is organized around three types:
//
//   - Stock owns a single ticker's date-to-closing-price series and answers
//     point, range and averaged queries with fuzzy date snapping.
//   - Portfolio owns, per stock, a date-to-signed-quantity event log and
//     computes point-in-time quantities and values.
//   - SmartPortfolio composes a Portfolio with reports, charting,
//     rebalancing and a line-oriented persistence format.
//
// Remote quote data is abstracted behind the QuoteGateway interface,
// implemented by the alphavantage subpackage.
package stockfolio
