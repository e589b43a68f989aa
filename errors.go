package shadowlayout

import "errors"

// Configuration errors. Engine operations never fail; only decoding
// attributes does.
var (
	// ErrInvalidColor is returned for color strings that do not parse.
	ErrInvalidColor = errors.New("shadowlayout: invalid color")

	// ErrInvalidGravity is returned for unknown gravity names.
	ErrInvalidGravity = errors.New("shadowlayout: invalid gravity")

	// ErrUnknownDrawable is returned when a foreground resource cannot be resolved.
	ErrUnknownDrawable = errors.New("shadowlayout: unknown drawable")
)
