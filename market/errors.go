package market

import "errors"

var (
	// ErrEmptySeries means the raw input held zero observations.
	ErrEmptySeries = errors.New("market: empty series")

	// ErrMalformedInput means a raw record failed to parse (missing field,
	// unparseable date or price). The whole conversion aborts; partial
	// series are never produced.
	ErrMalformedInput = errors.New("market: malformed input")

	// ErrDuplicateDate means two observations share a calendar day. Windowed
	// math downstream assumes one observation per day, so this is fatal
	// rather than a silent overwrite.
	ErrDuplicateDate = errors.New("market: duplicate date")
)
