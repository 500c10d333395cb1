// Package prompt implements bounded-retry interactive input: a validation
// loop parametrized by a validator function, with typed helpers for integer
// ranges and yes/no answers. Reader and writer are injected, so tests drive
// prompts from strings.Reader fixtures.
package prompt
