package rx

import "errors"

var (
	// ErrEmptySet indicates a character class was constructed with no members.
	ErrEmptySet = errors.New("empty set")

	// ErrRangeInverted indicates a set range whose end precedes its start.
	ErrRangeInverted = errors.New("inverted set range")

	// ErrRepeatBounds indicates inconsistent or negative repeat bounds.
	ErrRepeatBounds = errors.New("invalid repeat bounds")

	// ErrCaptureName indicates a capture group name outside the identifier grammar.
	ErrCaptureName = errors.New("invalid capture group name")
)
