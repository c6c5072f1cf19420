package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/minahasa-guide/internal/catalog"
	"github.com/iudanet/minahasa-guide/internal/client/storage"
)

var (
	// ErrNotInitialized is returned by mutations before Init completed
	ErrNotInitialized = errors.New("bookmark store is not initialized")

	// ErrDisposed is returned by every call after Dispose
	ErrDisposed = errors.New("bookmark store is disposed")
)

// State is the lifecycle state of the store
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	// StateError means the stored list could not be read; the store works as an empty set
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// WritePolicy decides what happens to memory when persisting fails
type WritePolicy int

const (
	// WritePolicyOptimistic updates memory even if the write fails, then returns the storage error
	WritePolicyOptimistic WritePolicy = iota
	// WritePolicyTransactional updates memory only after a successful write
	WritePolicyTransactional
)

// Listener receives a snapshot of the bookmarks after each change
type Listener func(items []catalog.Item)

// Option configures Store
type Option func(*Store)

// WithWritePolicy sets the write failure policy
func WithWritePolicy(policy WritePolicy) Option {
	return func(s *Store) {
		s.policy = policy
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store keeps the ordered list of bookmarked catalog items in memory
// and mirrors it to the savedItems key of the device store.
// All methods are safe for concurrent use; mutations are serialized.
type Store struct {
	kv        storage.KVStore
	logger    *slog.Logger
	listeners map[int]Listener
	items     []catalog.Item
	mu        sync.Mutex
	state     State
	policy    WritePolicy
	nextID    int
	disposed  bool
}

// NewStore creates a store on top of kv. Call Init before use.
func NewStore(kv storage.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		logger:    slog.Default(),
		listeners: make(map[int]Listener),
		policy:    WritePolicyOptimistic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads the stored list. It runs at most once; later calls return nil.
// A read or decode failure leaves the store in StateError with no bookmarks
// and is returned for reporting, the store stays usable.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.mu.Unlock()

	items, loadErr := s.load(ctx)

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if loadErr != nil {
		s.logger.WarnContext(ctx, "failed to load bookmarks, starting empty", "error", loadErr)
		s.state = StateError
		s.items = nil
	} else {
		s.state = StateReady
		s.items = items
	}
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	return loadErr
}

// Dispose drops listeners and rejects further calls. The KVStore is not closed.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disposed = true
	s.listeners = make(map[int]Listener)
}

// State returns the lifecycle state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Save appends item to the end of the list and persists it.
// Saving an id that is already bookmarked does nothing.
func (s *Store) Save(ctx context.Context, item catalog.Item) error {
	_, err := s.mutate(ctx, func(items []catalog.Item) ([]catalog.Item, bool) {
		if indexOf(items, item.ID) >= 0 {
			return items, false
		}
		return append(items, item.Clone()), true
	})
	return err
}

// Remove drops the item with id. Removing an absent id does nothing.
func (s *Store) Remove(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(items []catalog.Item) ([]catalog.Item, bool) {
		return without(items, id)
	})
	return err
}

// Toggle saves item if it is not bookmarked and removes it otherwise.
// Returns whether the item is bookmarked afterwards.
func (s *Store) Toggle(ctx context.Context, item catalog.Item) (bool, error) {
	saved := false
	_, err := s.mutate(ctx, func(items []catalog.Item) ([]catalog.Item, bool) {
		if indexOf(items, item.ID) >= 0 {
			return without(items, item.ID)
		}
		saved = true
		return append(items, item.Clone()), true
	})
	return saved, err
}

// Clear removes every bookmark
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.mutate(ctx, func(items []catalog.Item) ([]catalog.Item, bool) {
		return nil, len(items) > 0
	})
	return err
}

// IsSaved reports whether id is bookmarked. No I/O.
func (s *Store) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.items, id) >= 0
}

// Items returns copies of the bookmarks in insertion order
func (s *Store) Items() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Subscribe registers fn to receive a snapshot after each change.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return func() {}
	}

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// mutate runs change on a copy of the list under the lock, persists the result
// and applies it to memory according to the write policy.
func (s *Store) mutate(ctx context.Context, change func([]catalog.Item) ([]catalog.Item, bool)) (bool, error) {
	s.mu.Lock()

	if s.disposed {
		s.mu.Unlock()
		return false, ErrDisposed
	}
	if s.state != StateReady && s.state != StateError {
		s.mu.Unlock()
		return false, ErrNotInitialized
	}

	next, changed := change(cloneItems(s.items))
	if !changed {
		s.mu.Unlock()
		return false, nil
	}

	err := s.persist(ctx, next)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to persist bookmarks", "error", err, "policy", s.policy)
		if s.policy == WritePolicyTransactional {
			s.mu.Unlock()
			return false, err
		}
	}

	s.items = next
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	return true, err
}

func (s *Store) load(ctx context.Context) ([]catalog.Item, error) {
	data, err := s.kv.Get(ctx, storage.KeySavedItems)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, asOpError("get", err)
	}

	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, asOpError("decode", err)
	}
	return items, nil
}

func (s *Store) persist(ctx context.Context, items []catalog.Item) error {
	if len(items) == 0 {
		if err := s.kv.Delete(ctx, storage.KeySavedItems); err != nil {
			return asOpError("delete", err)
		}
		return nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return asOpError("encode", err)
	}
	if err := s.kv.Set(ctx, storage.KeySavedItems, data); err != nil {
		return asOpError("set", err)
	}
	return nil
}

func (s *Store) snapshotLocked() ([]catalog.Item, []Listener) {
	if len(s.listeners) == 0 {
		return nil, nil
	}
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return cloneItems(s.items), listeners
}

func notify(listeners []Listener, snapshot []catalog.Item) {
	for _, l := range listeners {
		l(cloneItems(snapshot))
	}
}

func asOpError(op string, err error) error {
	var opErr *storage.OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &storage.OpError{Op: op, Key: storage.KeySavedItems, Err: err}
}

func indexOf(items []catalog.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// without drops every entry with id, older blobs may hold duplicates
func without(items []catalog.Item, id string) ([]catalog.Item, bool) {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out, len(out) != len(items)
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if items == nil {
		return []catalog.Item{}
	}
	out := make([]catalog.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
