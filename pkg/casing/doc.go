// Package casing applies case styles to words used in memorable passwords.
//
// Four styles are supported: lower, upper, title (first letter uppercased,
// rest lowered; "capitalize" is an accepted alias) and random, which flips an
// independent coin per character. Style tags are parsed case-insensitively
// via Parse, so user input like "TITLE" or "Random" resolves cleanly.
package casing
