package allocator

import "errors"

// Sentinel kinds for allocation errors.
var (
	ErrMalformedInput = errors.New("malformed allocation input")
)
