// =============================
// File: internal/portfolio/errors.go
// =============================
package portfolio

import "errors"

var (
	// ErrDuplicateTicker is returned when a holding with the same ticker is already tracked.
	ErrDuplicateTicker = errors.New("duplicate ticker")

	// ErrUnknownTicker is returned when no performance series exists for a ticker.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrInvalidHolding is returned for holdings that cannot be displayed
	// (empty ticker, negative price or shares, missing series).
	ErrInvalidHolding = errors.New("invalid holding")
)
