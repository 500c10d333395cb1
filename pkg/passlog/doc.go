// Package passlog records generated passwords into append-only text files,
// one per generation mode, with lines formatted as
//
//	Mon 2006-01-02 15:04:05 | <password>
//
// Directories are created on demand. The filesystem and clock are both
// injectable so tests run against an in-memory filesystem with a pinned
// timestamp. Appends are safe for sequential single-process use; concurrent
// processes appending to the same file are out of scope.
package passlog
