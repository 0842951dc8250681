package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound: zero rows where exactly one was required.
	ErrNotFound = errors.New("not found")
	// ErrMultipleResults: more than one row where exactly one was required.
	// Seeing it means a uniqueness invariant was violated upstream.
	ErrMultipleResults = errors.New("multiple results")
	// ErrDuplicate: an insert collided with a unique constraint.
	ErrDuplicate = errors.New("duplicate")
	// ErrStoreUnavailable: the store could not be reached or the
	// transaction could not commit. Retryable by the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// translate maps driver and gorm errors onto the repository error set so
// callers can use errors.Is without importing gorm.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%v: %w", err, ErrDuplicate)
	default:
		return fmt.Errorf("%v: %w", err, ErrStoreUnavailable)
	}
}
