package domain

import "errors"

// Configuration errors fail fast at construction. They are never produced by
// a validation attempt; rejection is a Result, not an error.
var (
	ErrSeedTooShort      = errors.New("seed shorter than 256 bits")
	ErrDomainTagTooShort = errors.New("domain tag shorter than 128 bits")
	ErrWindowTooSmall    = errors.New("window size must be at least 1")
	ErrFragmentLength    = errors.New("fragment length shorter than 256 bits")
	ErrContentNotAllowed = errors.New("content-free session cannot bind content")
	ErrAnchorRegression  = errors.New("anchor cannot move backward")
)
