package casing

import "errors"

// ErrUnknownStyle is returned by Parse for any tag outside the recognized set.
var ErrUnknownStyle = errors.New("unknown case style")
