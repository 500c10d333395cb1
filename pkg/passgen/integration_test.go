package passgen_test

import (
	"math/rand"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passkit/pkg/casing"
	"github.com/dmitrymomot/passkit/pkg/passgen"
	"github.com/dmitrymomot/passkit/pkg/passlog"
	"github.com/dmitrymomot/passkit/pkg/wordlist"
)

// Full generate-then-log round: word file on an in-memory filesystem, seeded
// generator, fixed clock, one new line in the memorable log.
func TestGenerateAndLog(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	words := append(wordlist.List{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}, alphaWords(120)...)
	require.NoError(t, afero.WriteFile(fs, "words.txt", []byte(strings.Join(words, "\n")), 0o644))

	loaded, err := wordlist.Load("words.txt", wordlist.WithFs(fs))
	require.NoError(t, err)
	require.Equal(t, words, loaded)

	g := passgen.New(passgen.WithRand(rand.New(rand.NewSource(42))))
	pwd, err := g.Memorable(loaded, 3, casing.StyleTitle)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z][a-z]*[0-9]-[A-Z][a-z]*[0-9]-[A-Z][a-z]*[0-9]$`, pwd)

	// Same seed, same password.
	again, err := passgen.New(passgen.WithRand(rand.New(rand.NewSource(42)))).
		Memorable(loaded, 3, casing.StyleTitle)
	require.NoError(t, err)
	assert.Equal(t, pwd, again)

	recorder := passlog.New(
		passlog.WithFs(fs),
		passlog.WithClock(func() time.Time { return time.Date(2025, 1, 6, 15, 4, 5, 0, time.UTC) }),
	)
	require.NoError(t, recorder.Append(passlog.ModeMemorable, pwd))

	data, err := afero.ReadFile(fs, filepath.Join("Memorable", passlog.FileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)

	lineFormat := regexp.MustCompile(`^[A-Z][a-z]{2} \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \| ` + regexp.QuoteMeta(pwd) + `$`)
	assert.Regexp(t, lineFormat, lines[0])
}
