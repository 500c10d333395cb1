// Package passgen generates passwords in two modes.
//
// Memorable passwords are built from distinct words sampled without
// replacement from a word list, each cased by a casing.Style and suffixed
// with a single digit, joined with hyphens ("Ocean4-River9-Stone2"). Random
// passwords are independent draws with replacement from a charpool.Pool.
//
// Both modes are all-or-nothing: a validation failure returns an error and
// never a partial password. Generation is stateless between calls.
//
// # Randomness
//
// A Generator defaults to math/rand over a crypto/rand-backed source (see
// the randx package). Two consecutive calls with identical parameters are
// expected to differ; bit-for-bit reproducibility is available by injecting
// a seeded source:
//
//	g := passgen.New(passgen.WithRand(rand.New(rand.NewSource(42))))
//	pwd, err := g.Memorable(words, 3, casing.StyleTitle)
package passgen
