package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// ParseError is returned when font data cannot be parsed by a backend.
type ParseError struct {
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return "text: " + e.Parser + " parser: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
