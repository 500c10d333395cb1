package wordlist

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// MinWords is the smallest usable word list size. Anything below this is
// treated as a corrupt or truncated file rather than a valid dictionary.
const MinWords = 100

// List is an ordered sequence of non-empty trimmed candidate words.
type List []string

// Option configures word list loading.
type Option func(*loader)

type loader struct {
	fs afero.Fs
}

// WithFs sets the filesystem to read from. Defaults to the OS filesystem;
// tests inject afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	return func(l *loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// Load reads a plain-text word file (one word per line, UTF-8), trims each
// line and drops empty ones. The file is re-read on every call so edits are
// picked up without restarting.
func Load(path string, opts ...Option) (List, error) {
	l := &loader{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(l)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, errors.Join(ErrReadFailed, err)
	}

	lines := strings.Split(string(data), "\n")
	words := make(List, 0, len(lines))
	for _, line := range lines {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}

	if len(words) < MinWords {
		return nil, fmt.Errorf("%w: %d usable words, need at least %d", ErrTooFewWords, len(words), MinWords)
	}

	return words, nil
}
