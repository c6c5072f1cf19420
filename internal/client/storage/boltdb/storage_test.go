package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketKV) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Директория не существует
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "db.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)

	// Закрываем БД
	assert.NoError(t, store.Close())

	// После закрытия поле db должно стать nil
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать и должен просто ничего не делать
	assert.NoError(t, store.Close())
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}

	err = store.initBuckets()
	assert.NoError(t, err)

	err = db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketKV) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	assert.NoError(t, err)
}
