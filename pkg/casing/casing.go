package casing

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/passkit/pkg/randx"
)

// Style selects how a word is cased before it is used in a password.
type Style int

// Recognized case styles.
const (
	StyleLower Style = iota
	StyleUpper
	StyleTitle
	StyleRandom
)

var defaultRand = randx.New()

// Parse resolves a style tag into a Style. Matching is case-insensitive;
// "capitalize" is accepted as an alias for "title".
func Parse(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower":
		return StyleLower, nil
	case "upper":
		return StyleUpper, nil
	case "title", "capitalize":
		return StyleTitle, nil
	case "random":
		return StyleRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q (want lower, upper, title or random)", ErrUnknownStyle, s)
	}
}

// String returns the canonical tag for the style.
func (s Style) String() string {
	switch s {
	case StyleLower:
		return "lower"
	case StyleUpper:
		return "upper"
	case StyleTitle:
		return "title"
	case StyleRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Apply transforms word according to the style. StyleRandom flips a coin per
// rune between upper and lower case; non-letter runes pass through unchanged.
// rnd is only consulted for StyleRandom and may be nil, in which case a
// crypto-backed source is used.
func (s Style) Apply(word string, rnd *rand.Rand) string {
	switch s {
	case StyleUpper:
		return strings.ToUpper(word)
	case StyleTitle:
		return title(word)
	case StyleRandom:
		if rnd == nil {
			rnd = defaultRand
		}
		var b strings.Builder
		b.Grow(len(word))
		for _, r := range word {
			if rnd.Intn(2) == 0 {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		return b.String()
	default:
		return strings.ToLower(word)
	}
}

// title uppercases the first rune and lowercases the remainder.
func title(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
