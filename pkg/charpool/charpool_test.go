package charpool_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/charpool"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("all classes, no exclusions", func(t *testing.T) {
		t.Parallel()
		pool, err := charpool.Build(charpool.Config{Lower: true, Upper: true, Digits: true, Punctuation: true})
		require.NoError(t, err)

		want := charpool.Lowercase + charpool.Uppercase + charpool.Digits + charpool.Punctuation
		assert.Equal(t, want, pool.String())
		assert.Len(t, pool, 94)

		seen := make(map[rune]struct{}, len(pool))
		for _, r := range pool {
			_, dup := seen[r]
			assert.False(t, dup, "duplicate rune %q", r)
			seen[r] = struct{}{}
		}
	})

	t.Run("single class", func(t *testing.T) {
		t.Parallel()
		pool, err := charpool.Build(charpool.Config{Digits: true})
		require.NoError(t, err)
		assert.Equal(t, charpool.Digits, pool.String())
	})

	t.Run("exclusions are removed by membership", func(t *testing.T) {
		t.Parallel()
		pool, err := charpool.Build(charpool.Config{Lower: true, Excluded: "aeiou"})
		require.NoError(t, err)

		assert.Len(t, pool, 21)
		for _, r := range "aeiou" {
			assert.False(t, pool.Contains(r))
		}
		assert.True(t, pool.Contains('b'))
	})

	t.Run("no classes enabled", func(t *testing.T) {
		t.Parallel()
		_, err := charpool.Build(charpool.Config{})
		require.ErrorIs(t, err, charpool.ErrEmptyPool)
	})

	t.Run("exclusions cover the whole pool", func(t *testing.T) {
		t.Parallel()
		_, err := charpool.Build(charpool.Config{Digits: true, Excluded: charpool.Digits})
		require.ErrorIs(t, err, charpool.ErrEmptyPool)
	})

	t.Run("excluding characters outside the pool is harmless", func(t *testing.T) {
		t.Parallel()
		pool, err := charpool.Build(charpool.Config{Digits: true, Excluded: "abcXYZ!"})
		require.NoError(t, err)
		assert.Equal(t, charpool.Digits, pool.String())
	})
}

func TestPoolPick(t *testing.T) {
	t.Parallel()

	pool, err := charpool.Build(charpool.Config{Lower: true, Digits: true})
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(7))
	for range 100 {
		assert.True(t, pool.Contains(pool.Pick(rnd)))
	}
}

func TestPoolContains(t *testing.T) {
	t.Parallel()

	pool, err := charpool.Build(charpool.Config{Lower: true})
	require.NoError(t, err)

	assert.True(t, pool.Contains('a'))
	assert.True(t, pool.Contains('z'))
	assert.False(t, pool.Contains('A'))
	assert.False(t, pool.Contains('0'))
}
