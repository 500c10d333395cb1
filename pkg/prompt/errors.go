package prompt

import "errors"

// Package-specific errors
var (
	// ErrTooManyAttempts is returned once the retry budget is exhausted
	ErrTooManyAttempts = errors.New("too many invalid attempts")

	// ErrInputClosed is returned when the input stream ends mid-prompt
	ErrInputClosed = errors.New("input stream closed")
)
