package nickname

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWordList is the parent of every word list validation error.
	ErrInvalidWordList = errors.New("invalid word list")

	// ErrEmptyPrefixes is returned when the word list has no prefixes.
	ErrEmptyPrefixes = fmt.Errorf("%w: prefixes must not be empty", ErrInvalidWordList)

	// ErrEmptySuffixes is returned when the word list has no suffixes.
	ErrEmptySuffixes = fmt.Errorf("%w: suffixes must not be empty", ErrInvalidWordList)
)
