package model

import "errors"

// Sentinel kinds for entity validation errors.
var (
	ErrInvalidMember = errors.New("invalid member")
	ErrInvalidTask   = errors.New("invalid task")
)
