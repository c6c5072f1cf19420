package storage

import (
	"context"
)

//go:generate moq -out kvstore_mock.go . KVStore

// Fixed keys of the device key-value store.
const (
	// KeyToken holds the opaque bearer token string
	KeyToken = "token"
	// KeyUser holds the JSON encoded user profile
	KeyUser = "user"
	// KeySavedItems holds the JSON array of bookmarked catalog items
	KeySavedItems = "savedItems"
	// KeyPasswordReset holds the pending password reset (email and token)
	KeyPasswordReset = "passwordReset"
)

// KVStore defines the device key-value storage used by the client.
// Values are opaque bytes; callers own the encoding (JSON for structured values).
type KVStore interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if nothing is stored
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys in lexical order
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying database
	Close() error
}
