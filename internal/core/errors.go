package core

import "errors"

// Errors returned by field components. Call sites wrap them with the
// offending value, so compare with errors.Is.
var (
	// ErrInvalidParameter reports a non-positive time constant, radius or
	// timestep, or a field that does not match its grid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyField reports a field or grid without nodes.
	ErrEmptyField = errors.New("empty field")
)
