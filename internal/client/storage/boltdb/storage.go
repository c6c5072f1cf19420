package boltdb

import (
	"context"
	"fmt"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketKV = []byte("kv")
)

// Storage represents BoltDB storage implementation of the device key-value store
type Storage struct {
	db *bbolt.DB
	mu sync.RWMutex
}

// Compile-time check that Storage implements KVStore
var _ storage.KVStore = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
// Closing twice is a no-op
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketKV); err != nil {
			return fmt.Errorf("failed to create kv bucket: %w", err)
		}
		return nil
	})
}

// view runs fn in a read-only transaction on the kv bucket
func (s *Storage) view(fn func(bucket *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return fn(bucket)
	})
}

// update runs fn in a read-write transaction on the kv bucket
func (s *Storage) update(fn func(bucket *bbolt.Bucket) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		return fn(bucket)
	})
}
