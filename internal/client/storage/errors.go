package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrKeyNotFound indicates that nothing is stored under the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

// OpError records a failed storage operation and the key it touched.
// Callers treat it as the storage error kind: reads degrade to empty state,
// writes are reported to the user.
type OpError struct {
	Err error
	Op  string
	Key string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the storage layer
func IsStorageError(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr)
}
