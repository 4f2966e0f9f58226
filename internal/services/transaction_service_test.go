package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget/internal/core"
	"budget/internal/kv/memory"
	"budget/internal/ledger"
)

func newService(t *testing.T) *TransactionService {
	t.Helper()
	store := ledger.NewStore(memory.New(), "")
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	// nil AMQP client: events are skipped, not required
	return NewTransactionService(store, nil)
}

func add(t *testing.T, s *TransactionService, amount string, typ core.Type, category string, date core.Date) core.Transaction {
	t.Helper()
	tx, err := s.AddTransaction(context.Background(), core.Draft{
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Description: "test entry",
		Date:        date,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return tx
}

func TestAddAndDeleteTransaction(t *testing.T) {
	s := newService(t)

	tx := add(t, s, "10", core.TypeExpense, "food", "2024-06-01")
	if len(s.ListTransactions()) != 1 {
		t.Fatal("expected 1 transaction")
	}

	if !s.DeleteTransaction(context.Background(), tx.ID) {
		t.Fatal("expected deletion")
	}
	if s.DeleteTransaction(context.Background(), tx.ID) {
		t.Error("second deletion must report not found")
	}
	if len(s.ListTransactions()) != 0 {
		t.Error("expected empty collection")
	}
}

func TestAddTransactionValidation(t *testing.T) {
	s := newService(t)

	_, err := s.AddTransaction(context.Background(), core.Draft{
		Amount:      "nope",
		Type:        core.TypeExpense,
		Category:    "food",
		Description: "bad",
		Date:        "2024-06-01",
	})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestMonthlyViews(t *testing.T) {
	s := newService(t)

	add(t, s, "1000", core.TypeIncome, "salary", "2024-06-01")
	add(t, s, "250.50", core.TypeExpense, "food", "2024-06-10")
	add(t, s, "30", core.TypeExpense, "food", "2024-05-10")

	sum := s.PeriodSummary("2024-06")
	if sum.Balance.Float() != 749.5 {
		t.Errorf("expected balance 749.5, got %v", sum.Balance.Float())
	}

	totals := s.CategoryTotals("2024-06")
	if got := totals["food"].Cents; got != 25050 {
		t.Errorf("expected 25050, got %d", got)
	}
	if _, ok := totals["salary"]; ok {
		t.Error("income must not appear in category totals")
	}

	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	series := s.MonthlySeries(ref)
	if len(series) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(series))
	}
	if series[11].Key != "2024-06" || series[10].Expenses.Cents != 3000 {
		t.Errorf("unexpected series tail: %+v %+v", series[10], series[11])
	}
}

func TestCategories(t *testing.T) {
	s := newService(t)
	if len(s.Categories()) != 11 {
		t.Errorf("expected the fixed 11-entry registry")
	}
}
