package stockfolio

import "errors"

// Error kinds returned by the package. Callers are expected to test them
// with errors.Is; the wrapped message carries the details.
var (
	// ErrNotFound reports that price data is absent for a requested date,
	// even after snapping to nearby trading days.
	ErrNotFound = errors.New("no data for date")

	// ErrInvalidArgument reports a caller mistake: non-positive quantities,
	// removing more than held, inverted date ranges, and the like.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownTicker reports that the quote gateway does not recognize a
	// ticker symbol at Stock construction time.
	ErrUnknownTicker = errors.New("unknown ticker symbol")

	// ErrNoPriceData reports that the quote gateway returned an empty
	// history for a ticker.
	ErrNoPriceData = errors.New("no price data found")
)
