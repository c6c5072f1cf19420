package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
	"github.com/iudanet/minahasa-guide/internal/client/storage/boltdb"
	"github.com/iudanet/minahasa-guide/internal/client/storage/sqlite"
	"github.com/iudanet/minahasa-guide/internal/config"
)

// openStore открывает хранилище устройства выбранного типа
func openStore(ctx context.Context, backend, path string) (storage.KVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	switch backend {
	case config.BackendBolt:
		kv, err := boltdb.New(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return kv, nil
	case config.BackendSQLite:
		kv, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return kv, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
