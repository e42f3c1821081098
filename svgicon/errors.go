package svgicon

import "errors"

// ErrorMode is the for setting how the parser reacts to invalid
// attributes
type ErrorMode uint8

const (
	// IgnoreErrorMode skips invalid attributes silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs invalid attributes, and skips them
	WarnErrorMode
	// StrictErrorMode stops the parsing on the first invalid attribute
	StrictErrorMode
)

var (
	// ErrEmptyDocument is returned for an input without any element.
	ErrEmptyDocument = errors.New("invalid svg xml icon")
	// ErrInvalidViewBox is wrapped by the errors about a viewBox attribute
	// which is present, but not made of four numbers with positive size.
	ErrInvalidViewBox = errors.New("invalid viewBox")
	// ErrInvalidLength is wrapped by the errors about a length attribute
	// which does not start with a number.
	ErrInvalidLength = errors.New("invalid length")
)
