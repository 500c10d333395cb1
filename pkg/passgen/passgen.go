package passgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/dmitrymomot/passkit/pkg/casing"
	"github.com/dmitrymomot/passkit/pkg/charpool"
	"github.com/dmitrymomot/passkit/pkg/randx"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

// Bounds on generation parameters.
const (
	MinWords = 2
	MaxWords = 10

	MinLength = 4
	MaxLength = 128
)

// Generator produces passwords from an injectable randomness source.
type Generator struct {
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the randomness source. The default draws from
// crypto/rand; tests pass rand.New(rand.NewSource(seed)) for reproducible
// output.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		if rnd != nil {
			g.rnd = rnd
		}
	}
}

// New creates a Generator. Without options it uses a crypto-backed source.
func New(opts ...Option) *Generator {
	g := &Generator{rnd: randx.New()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Memorable builds a password of numWords distinct words sampled uniformly
// without replacement from words. Each word is cased per style and suffixed
// with one uniform digit 0-9; the tokens are joined with hyphens, e.g.
// "Ocean4-River9-Stone2".
func (g *Generator) Memorable(words wordlist.List, numWords int, style casing.Style) (string, error) {
	if numWords < MinWords || numWords > MaxWords {
		return "", fmt.Errorf("%w: number of words must be between %d and %d, got %d",
			ErrWordCountOutOfRange, MinWords, MaxWords, numWords)
	}
	// Load already guarantees at least wordlist.MinWords entries, but a
	// caller-supplied slice can be arbitrarily small.
	if len(words) < numWords {
		return "", fmt.Errorf("%w: need %d distinct words, have %d",
			ErrInsufficientWords, numWords, len(words))
	}

	parts := make([]string, 0, numWords)
	for _, i := range g.rnd.Perm(len(words))[:numWords] {
		styled := style.Apply(words[i], g.rnd)
		parts = append(parts, styled+string(rune('0'+g.rnd.Intn(10))))
	}

	return strings.Join(parts, "-"), nil
}

// Random builds a password of length characters drawn independently with
// replacement from the pool described by cfg.
func (g *Generator) Random(length int, cfg charpool.Config) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: length must be between %d and %d, got %d",
			ErrLengthOutOfRange, MinLength, MaxLength, length)
	}

	pool, err := charpool.Build(cfg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(pool.Pick(g.rnd))
	}

	return b.String(), nil
}

var defaultGenerator = New()

// Memorable generates a memorable password using the default crypto-backed
// generator.
func Memorable(words wordlist.List, numWords int, style casing.Style) (string, error) {
	return defaultGenerator.Memorable(words, numWords, style)
}

// Random generates a random password using the default crypto-backed
// generator.
func Random(length int, cfg charpool.Config) (string, error) {
	return defaultGenerator.Random(length, cfg)
}
