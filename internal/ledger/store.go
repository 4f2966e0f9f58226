// Package ledger holds the in-memory transaction collection and keeps
// it in sync with the key-value persistence layer.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"budget/internal/core"
	"budget/internal/kv"
)

// DefaultStorageKey is the key the serialized collection lives under.
const DefaultStorageKey = "budget-planner-transactions"

type Store struct {
	mu    sync.Mutex
	kv    kv.Store
	key   string
	items []core.Transaction
}

func NewStore(store kv.Store, key string) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{kv: store, key: key}
}

// Load hydrates the collection from persistence. Corrupt or unreadable
// data is absorbed: the store starts empty and, when the payload was
// present but unparseable, the stale key is removed so it cannot poison
// later loads.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Read(ctx, s.key)
	if err != nil {
		slog.Warn("failed to read transactions, starting empty", "key", s.key, "error", err)
		s.items = nil
		return nil
	}
	if !ok {
		s.items = nil
		return nil
	}

	items, err := decodeTransactions(raw)
	if err != nil {
		slog.Warn("corrupt transaction data, discarding", "key", s.key, "error", err)
		if delErr := s.kv.Delete(ctx, s.key); delErr != nil {
			slog.Warn("failed to delete corrupt data", "key", s.key, "error", delErr)
		}
		s.items = nil
		return nil
	}

	s.items = items
	return nil
}

// Add validates the draft, assigns identity, prepends the transaction
// so the collection stays newest first, and persists the new state.
func (s *Store) Add(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	tx, err := draft.Parse()
	if err != nil {
		return core.Transaction{}, err
	}
	tx.ID = uuid.NewString()
	tx.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]core.Transaction{tx}, s.items...)
	s.persist(ctx)
	return tx, nil
}

// Remove deletes the transaction with the given id. It reports whether
// anything was removed; removing an unknown id is not an error and
// leaves persistence untouched.
func (s *Store) Remove(ctx context.Context, id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.items {
		if tx.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return tx, true
		}
	}
	return core.Transaction{}, false
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the transaction with the given id.
func (s *Store) Get(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.items {
		if tx.ID == id {
			return tx, true
		}
	}
	return core.Transaction{}, false
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist writes the current collection. Callers hold s.mu. An empty
// collection is never written so that a fresh start cannot clobber a
// payload another process may still own. Write failures are logged and
// swallowed; the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	if len(s.items) == 0 {
		return
	}
	raw, err := encodeTransactions(s.items)
	if err != nil {
		slog.Error("failed to encode transactions", "error", err)
		return
	}
	if err := s.kv.Write(ctx, s.key, raw); err != nil {
		slog.Error("failed to persist transactions", "key", s.key, "error", err)
	}
}

func encodeTransactions(items []core.Transaction) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal transactions: %w", err)
	}
	return string(b), nil
}

func decodeTransactions(raw string) ([]core.Transaction, error) {
	var items []core.Transaction
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}
	return items, nil
}
