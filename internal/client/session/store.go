package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/minahasa-guide/internal/client/storage"
	"github.com/iudanet/minahasa-guide/pkg/api"
)

// ErrNoSession indicates that no user is logged in
var ErrNoSession = errors.New("not logged in")

// PendingReset is a password reset requested but not confirmed yet
type PendingReset struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Store keeps the client-side copy of the session in the device key-value store.
// The token is never cached in memory: every Token call reads storage,
// so a logout in one place is visible to the API client immediately.
type Store struct {
	kv storage.KVStore
}

// NewStore creates a session store on top of kv
func NewStore(kv storage.KVStore) *Store {
	return &Store{kv: kv}
}

// Save stores token and user after a successful login
func (s *Store) Save(ctx context.Context, token string, user api.User) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := s.kv.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, userJSON); err != nil {
		// Токен без профиля не считается сессией
		return errors.Join(fmt.Errorf("failed to save user: %w", err), s.kv.Delete(ctx, storage.KeyToken))
	}

	return nil
}

// Token returns the stored bearer token or "" when logged out.
// Implements api.TokenSource.
func (s *Store) Token(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, storage.KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// User returns the cached user profile
// Returns ErrNoSession if nothing is stored
func (s *Store) User(ctx context.Context) (*api.User, error) {
	data, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var user api.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// IsAuthenticated reports whether a token is stored.
// There is no client-side expiry check; the server rejects stale tokens.
func (s *Store) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Clear removes token and user (logout)
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, storage.KeyToken); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := s.kv.Delete(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SavePendingReset remembers the reset token between "forgot password" and "reset password"
func (s *Store) SavePendingReset(ctx context.Context, reset PendingReset) error {
	data, err := json.Marshal(reset)
	if err != nil {
		return fmt.Errorf("failed to marshal pending reset: %w", err)
	}
	return s.kv.Set(ctx, storage.KeyPasswordReset, data)
}

// PendingReset returns the pending reset, or nil when there is none
func (s *Store) PendingReset(ctx context.Context) (*PendingReset, error) {
	data, err := s.kv.Get(ctx, storage.KeyPasswordReset)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var reset PendingReset
	if err := json.Unmarshal(data, &reset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending reset: %w", err)
	}
	return &reset, nil
}

// ClearPendingReset forgets the pending reset
func (s *Store) ClearPendingReset(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyPasswordReset)
}
