package avatar

import "errors"

var (
	// ErrInvalidSize is reported for a size that is not a positive finite number.
	ErrInvalidSize = errors.New("avatar size must be a positive finite number")

	// ErrEmptyPalette is reported when a palette has no colours.
	ErrEmptyPalette = errors.New("avatar palette must not be empty")

	// ErrInvalidFormat is reported for an unknown output format.
	ErrInvalidFormat = errors.New("invalid avatar format")
)
