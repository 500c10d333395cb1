package passlog

import "errors"

// Package-specific errors
var (
	// ErrUnknownMode is returned for a mode the Recorder has no directory for
	ErrUnknownMode = errors.New("unknown log mode")

	// ErrAppendFailed is returned when the log directory or file cannot be written
	ErrAppendFailed = errors.New("failed to append to password log")
)
