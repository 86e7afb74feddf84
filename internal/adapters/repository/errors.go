package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrDuplicateID    = errors.New("duplicate id")
)
