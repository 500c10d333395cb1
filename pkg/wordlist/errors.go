package wordlist

import "errors"

// Package-specific errors
var (
	// ErrNotFound is returned when the word list file does not exist
	ErrNotFound = errors.New("word list file not found")

	// ErrReadFailed is returned when the word list file exists but cannot be read
	ErrReadFailed = errors.New("failed to read word list file")

	// ErrTooFewWords is returned when the file yields fewer usable words than MinWords
	ErrTooFewWords = errors.New("word list too small")
)
