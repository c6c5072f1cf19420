package boltdb

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.view(func(bucket *bbolt.Bucket) error {
		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Данные bbolt валидны только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, err
		}
		return nil, &storage.OpError{Op: "get", Key: key, Err: err}
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	err := s.update(func(bucket *bbolt.Bucket) error {
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return &storage.OpError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key
func (s *Storage) Delete(ctx context.Context, key string) error {
	err := s.update(func(bucket *bbolt.Bucket) error {
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return &storage.OpError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// Keys returns all stored keys in lexical order
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.view(func(bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, &storage.OpError{Op: "keys", Err: err}
	}

	return keys, nil
}
