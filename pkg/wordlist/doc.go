// Package wordlist loads dictionaries of candidate words for memorable
// password generation from plain-text files.
//
// A word file contains one word per line, UTF-8 encoded. Lines are trimmed
// of surrounding whitespace and blank lines are ignored. A file that yields
// fewer than MinWords usable entries is rejected with ErrTooFewWords so a
// truncated download cannot silently weaken generated passwords.
//
// Loading is deliberately uncached: each Load call re-reads the file, keeping
// the package free of global state. The filesystem is injectable through
// WithFs so tests can run entirely in memory:
//
//	fs := afero.NewMemMapFs()
//	_ = afero.WriteFile(fs, "words.txt", fixture, 0o644)
//	words, err := wordlist.Load("words.txt", wordlist.WithFs(fs))
package wordlist
