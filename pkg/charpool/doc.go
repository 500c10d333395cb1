// Package charpool builds the allowed-character sets random passwords are
// drawn from.
//
// A pool is assembled from up to four canonical ASCII classes — lowercase
// letters, uppercase letters, digits and the 32 standard punctuation
// symbols — in that fixed order, then filtered against an exclusion string.
// Only membership matters for generation; order is kept stable for
// predictable debugging output. An empty result is an error (ErrEmptyPool)
// rather than a silent zero-entropy pool.
package charpool
