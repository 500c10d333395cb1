package charpool

import (
	"math/rand"
	"strings"
)

// Canonical character classes, concatenated in this order when building a pool.
const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Config selects which character classes a pool is built from and which
// individual characters are excluded afterwards.
type Config struct {
	Lower       bool
	Upper       bool
	Digits      bool
	Punctuation bool

	// Excluded lists characters to strip from the pool. Membership test,
	// not a pattern.
	Excluded string
}

// Pool is the set of characters a random password may be drawn from. The
// source classes are disjoint, so a built pool never contains duplicates.
type Pool []rune

// Build assembles a pool from the enabled classes minus the excluded
// characters. It returns ErrEmptyPool when nothing remains, either because
// no class was enabled or the exclusions covered everything.
func Build(cfg Config) (Pool, error) {
	var classes strings.Builder
	if cfg.Lower {
		classes.WriteString(Lowercase)
	}
	if cfg.Upper {
		classes.WriteString(Uppercase)
	}
	if cfg.Digits {
		classes.WriteString(Digits)
	}
	if cfg.Punctuation {
		classes.WriteString(Punctuation)
	}

	pool := make(Pool, 0, classes.Len())
	for _, r := range classes.String() {
		if !strings.ContainsRune(cfg.Excluded, r) {
			pool = append(pool, r)
		}
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	return pool, nil
}

// Contains reports whether r is part of the pool.
func (p Pool) Contains(r rune) bool {
	for _, c := range p {
		if c == r {
			return true
		}
	}
	return false
}

// Pick returns one pool character chosen uniformly at random.
func (p Pool) Pick(rnd *rand.Rand) rune {
	return p[rnd.Intn(len(p))]
}

func (p Pool) String() string {
	return string(p)
}
