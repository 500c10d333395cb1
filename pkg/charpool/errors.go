package charpool

import "errors"

// ErrEmptyPool is returned by Build when no characters remain after applying
// the class flags and exclusions.
var ErrEmptyPool = errors.New("character pool is empty after exclusions")
