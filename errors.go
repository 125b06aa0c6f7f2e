package sipgo

import "errors"

var (
	// ErrStateSize is returned when a serialized state has the wrong
	// length.
	ErrStateSize = errors.New("serialized state has wrong length")

	// ErrStateFormat is returned when a serialized state fails header
	// or field validation.
	ErrStateFormat = errors.New("invalid serialized state")
)
