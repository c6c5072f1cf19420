package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
)

func TestStorage_SetGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("abc")))

	value, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	// Перезапись
	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("def")))
	value, err = store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("def"), value)
}

func TestStorage_GetNotFound(t *testing.T) {
	store := newTestStorage(t)

	value, err := store.Get(context.Background(), storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Nil(t, value)
	assert.False(t, storage.IsStorageError(err))
}

func TestStorage_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte(`{"id":"1"}`)))
	require.NoError(t, store.Delete(ctx, storage.KeyUser))

	_, err := store.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.Delete(ctx, storage.KeyUser))
}

func TestStorage_Keys(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("{}")))
	require.NoError(t, store.Set(ctx, storage.KeySavedItems, []byte("[]")))
	require.NoError(t, store.Set(ctx, storage.KeyToken, []byte("abc")))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"savedItems", "token", "user"}, keys)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeySavedItems, []byte(`[{"id":"1"}]`)))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, storage.KeySavedItems)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))
}

func TestStorage_Closed(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.True(t, storage.IsStorageError(err))

	err = store.Set(ctx, storage.KeyToken, []byte("abc"))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Delete(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
