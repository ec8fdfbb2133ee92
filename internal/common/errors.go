// Package common defines shared constants and sentinel errors used across
// repeatermap layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrCorruptData marks a stored collection blob that could not be
	// decoded. Persistence failures are unexpected in this system and
	// surface to the caller instead of being absorbed.
	ErrCorruptData = errors.New("corrupt stored data")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
