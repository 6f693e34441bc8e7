package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the labels or values were empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch indicates labels and values differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrNegativeSize indicates a pie slice with a negative size.
	ErrNegativeSize = errors.New("negative size")
	// ErrNonFinite indicates a NaN or infinite value.
	ErrNonFinite = errors.New("non-finite value")
	// ErrUnsupportedFormat indicates a filename extension with no encoder.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrEmptyPie indicates pie sizes that sum to zero.
	ErrEmptyPie = errors.New("sizes sum to zero")
	// ErrValueRange indicates values spread wider than an axis can span.
	ErrValueRange = errors.New("value range too large")
)

// ValidationError is returned when a request is rejected before rendering.
// Its message is the user-facing explanation.
type ValidationError struct {
	Err error
	msg string
}

func newValidationError(err error, msg string) *ValidationError {
	return &ValidationError{Err: err, msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return e.Err }

// RenderError wraps a failure while drawing or saving a figure.
type RenderError struct {
	Kind     string
	Filename string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("could not generate %s chart: %v", e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
