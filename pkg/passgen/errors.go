package passgen

import "errors"

// Package-specific errors
var (
	// ErrWordCountOutOfRange is returned when numWords falls outside [MinWords, MaxWords]
	ErrWordCountOutOfRange = errors.New("word count out of range")

	// ErrLengthOutOfRange is returned when length falls outside [MinLength, MaxLength]
	ErrLengthOutOfRange = errors.New("password length out of range")

	// ErrInsufficientWords is returned when the word source holds fewer distinct
	// words than requested
	ErrInsufficientWords = errors.New("not enough distinct words in word source")
)
