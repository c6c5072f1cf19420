package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
	"github.com/iudanet/minahasa-guide/internal/client/storage/boltdb"
	"github.com/iudanet/minahasa-guide/pkg/api"
)

func newTestStore(t *testing.T) (*Store, storage.KVStore) {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return NewStore(kv), kv
}

func TestStore_SaveAndRead(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	user := api.User{ID: "1", Username: "Test", Email: "t@t.com"}
	require.NoError(t, store.Save(ctx, "abc", user))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	got, err := store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, *got)

	// Данные лежат под фиксированными ключами
	raw, err := kv.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"Test","email":"t@t.com"}`, string(raw))

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_SaveEmptyToken(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.Save(context.Background(), "", api.User{ID: "1"}))
}

func TestStore_Empty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	_, err = store.User(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	ok, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", api.User{ID: "1"}))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// Повторный logout не ошибка
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_TokenReadFresh(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", api.User{ID: "1"}))

	// Кто-то другой перезаписал токен напрямую
	require.NoError(t, kv.Set(ctx, storage.KeyToken, []byte("xyz")))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
}

func TestStore_TokenStorageError(t *testing.T) {
	kv := &storage.KVStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, &storage.OpError{Op: "get", Key: key, Err: errors.New("disk I/O error")}
		},
	}
	store := NewStore(kv)

	_, err := store.Token(context.Background())
	require.Error(t, err)
	assert.True(t, storage.IsStorageError(err))
}

func TestStore_PendingReset(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	reset, err := store.PendingReset(ctx)
	require.NoError(t, err)
	assert.Nil(t, reset)

	require.NoError(t, store.SavePendingReset(ctx, PendingReset{Email: "t@t.com", Token: "reset-token"}))

	reset, err = store.PendingReset(ctx)
	require.NoError(t, err)
	require.NotNil(t, reset)
	assert.Equal(t, "reset-token", reset.Token)

	require.NoError(t, store.ClearPendingReset(ctx))
	reset, err = store.PendingReset(ctx)
	require.NoError(t, err)
	assert.Nil(t, reset)
}

// TestStore_Save_UserWriteFails проверяет, что при ошибке записи профиля токен не остается
func TestStore_Save_UserWriteFails(t *testing.T) {
	writeErr := errors.New("disk full")
	kv := &storage.KVStoreMock{
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			if key == storage.KeyUser {
				return writeErr
			}
			return nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			return nil
		},
	}
	store := NewStore(kv)

	err := store.Save(context.Background(), "abc", api.User{ID: "1"})
	require.ErrorIs(t, err, writeErr)

	require.Len(t, kv.DeleteCalls(), 1)
	assert.Equal(t, storage.KeyToken, kv.DeleteCalls()[0].Key)
}
