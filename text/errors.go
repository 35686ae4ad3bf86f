package text

import (
	"errors"
	"strconv"
)

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when neither the requested family nor
	// a fallback is registered.
	ErrUnknownFamily = errors.New("text: unknown font family")

	// ErrInvalidSize is returned for font sizes that are not positive.
	ErrInvalidSize = errors.New("text: font size must be positive")
)

// FontError reports a failure tied to one font family.
type FontError struct {
	Family string
	Err    error
}

func (e *FontError) Error() string {
	return "text: font " + strconv.Quote(e.Family) + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error { return e.Err }
