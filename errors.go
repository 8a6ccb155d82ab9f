package pixelgraft

import "errors"

// Errors shared by all pixelgraft packages. Callers test them with errors.Is;
// operations wrap them with context.
var (
	// ErrOutOfBounds is returned when a coordinate lies outside a buffer.
	// Bulk operations skip such pixels instead of returning it.
	ErrOutOfBounds = errors.New("pixelgraft: coordinates out of bounds")

	// ErrDegenerateInput is the parent of all rejected-input errors.
	ErrDegenerateInput = errors.New("pixelgraft: degenerate input")

	// ErrDegeneratePolygon is returned for polygons with fewer than three
	// vertices, or paths with fewer than two clicks.
	ErrDegeneratePolygon = NewDegenerateError("polygon needs at least 3 vertices")

	// ErrNoMatch reports that a block search found no feasible offset.
	ErrNoMatch = errors.New("pixelgraft: no feasible match in search window")

	// ErrUnsupportedFormat is returned when an image extension has no encoder.
	ErrUnsupportedFormat = errors.New("pixelgraft: unsupported image format")
)

type degenerateError struct{ msg string }

func (e *degenerateError) Error() string { return "pixelgraft: " + e.msg }
func (e *degenerateError) Unwrap() error { return ErrDegenerateInput }

// NewDegenerateError returns a sentinel for rejected input that matches
// ErrDegenerateInput under errors.Is. Sub-packages use it for their own
// sentinels.
func NewDegenerateError(msg string) error {
	return &degenerateError{msg: msg}
}
