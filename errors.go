package tuplemap

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a key has no row.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDuplicateKey is returned by Insert when the key already has a row.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrIndexNotEmpty is returned when a map is built on an index that
	// already holds keys. Those keys would point at rows that do not exist.
	ErrIndexNotEmpty = errors.New("index must be empty")

	// ErrInvalidColumns is returned when a caller-supplied column is nil
	// or already holds elements.
	ErrInvalidColumns = errors.New("columns must be non-nil and empty")
)

// KeyError records the key an operation failed for.
//
// The underlying error (ErrKeyNotFound or ErrDuplicateKey) can be
// accessed via errors.Unwrap or matched with errors.Is.
type KeyError struct {
	Key   any
	cause error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %v", e.cause, e.Key)
}

func (e *KeyError) Unwrap() error { return e.cause }

func keyNotFound(key any) error {
	return &KeyError{Key: key, cause: ErrKeyNotFound}
}

func duplicateKey(key any) error {
	return &KeyError{Key: key, cause: ErrDuplicateKey}
}
