package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"budget/internal/core"
	"budget/internal/kv/memory"
)

func draft(amount string, typ core.Type, category, desc string, date core.Date) core.Draft {
	return core.Draft{
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Description: desc,
		Date:        date,
	}
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), "")

	first, err := s.Add(ctx, draft("10", core.TypeExpense, "food", "coffee", "2024-06-01"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected assigned id")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("expected assigned createdAt")
	}

	second, err := s.Add(ctx, draft("20", core.TypeExpense, "food", "lunch", "2024-06-02"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	// Newest first
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("expected newest-first ordering")
	}
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	s := NewStore(kvStore, "")

	if _, err := s.Add(ctx, draft("10", core.TypeExpense, "food", "coffee", "2024-06-01")); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := s.List()

	_, err := s.Add(ctx, draft("abc", core.TypeExpense, "food", "bad", "2024-06-01"))
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// A failed add leaves the collection and persistence untouched
	after := s.List()
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Error("failed add must not modify the collection")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), "")

	tx, err := s.Add(ctx, draft("10", core.TypeExpense, "food", "coffee", "2024-06-01"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, ok := s.Remove(ctx, tx.ID)
	if !ok || removed.ID != tx.ID {
		t.Fatalf("expected removal of %s", tx.ID)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}

	// Unknown ids are a no-op
	if _, ok := s.Remove(ctx, "ghost"); ok {
		t.Error("expected no removal for unknown id")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()

	s := NewStore(kvStore, "")
	if _, err := s.Add(ctx, draft("250.50", core.TypeExpense, "food", "groceries", "2024-06-01")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(ctx, draft("1000", core.TypeIncome, "salary", "june pay", "2024-06-01")); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A fresh store over the same backing recovers the collection
	restored := NewStore(kvStore, "")
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	list := restored.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].Description != "june pay" || list[0].Amount.Cents != 100000 {
		t.Errorf("unexpected newest transaction: %+v", list[0])
	}
	if list[1].Amount.Cents != 25050 {
		t.Errorf("expected 25050 cents, got %d", list[1].Amount.Cents)
	}
}

func TestLoadCorruptData(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()
	if err := kvStore.Write(ctx, DefaultStorageKey, "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStore(kvStore, "")
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load must absorb corrupt data, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}

	// The corrupt payload is removed so it cannot poison later loads
	if _, ok, _ := kvStore.Read(ctx, DefaultStorageKey); ok {
		t.Error("expected corrupt key to be deleted")
	}
}

func TestLoadAbsorbsBadRecords(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()

	// Records with non-numeric amounts load with zero cents
	raw, _ := json.Marshal([]map[string]any{
		{"id": "a", "amount": "oops", "type": "expense", "category": "food", "description": "x", "date": "2024-06-01"},
		{"id": "b", "amount": 12.5, "type": "expense", "category": "food", "description": "y", "date": "2024-06-02"},
	})
	if err := kvStore.Write(ctx, DefaultStorageKey, string(raw)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStore(kvStore, "")
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].Amount.Cents != 0 {
		t.Errorf("bad amount must contribute zero, got %d", list[0].Amount.Cents)
	}
	if list[1].Amount.Cents != 1250 {
		t.Errorf("expected 1250 cents, got %d", list[1].Amount.Cents)
	}
}

func TestEmptyCollectionIsNeverPersisted(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.New()

	s := NewStore(kvStore, "")
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok, _ := kvStore.Read(ctx, DefaultStorageKey); ok {
		t.Error("loading an empty store must not write anything")
	}

	// Removing the last transaction also skips the write, leaving the
	// previous payload in place
	tx, err := s.Add(ctx, draft("10", core.TypeExpense, "food", "coffee", "2024-06-01"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	payload, ok, _ := kvStore.Read(ctx, DefaultStorageKey)
	if !ok {
		t.Fatal("expected persisted payload after add")
	}

	if _, ok := s.Remove(ctx, tx.ID); !ok {
		t.Fatal("expected removal")
	}
	after, ok, _ := kvStore.Read(ctx, DefaultStorageKey)
	if !ok || after != payload {
		t.Error("emptying the store must not overwrite the stored payload")
	}
}
