package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, &storage.OpError{Op: "get", Key: key, Err: translate(err)}
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return &storage.OpError{Op: "set", Key: key, Err: translate(err)}
	}
	return nil
}

// Delete removes key
func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &storage.OpError{Op: "delete", Key: key, Err: translate(err)}
	}
	return nil
}

// Keys returns all stored keys in lexical order
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, &storage.OpError{Op: "keys", Err: translate(err)}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, &storage.OpError{Op: "keys", Err: err}
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.OpError{Op: "keys", Err: err}
	}

	return keys, nil
}

// translate maps database/sql closed errors onto ErrStorageClosed
func translate(err error) error {
	if strings.Contains(err.Error(), "database is closed") {
		return storage.ErrStorageClosed
	}
	return err
}
