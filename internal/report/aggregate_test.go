package report

import (
	"testing"
	"time"

	"budget/internal/core"
)

func TestCategoryTotals(t *testing.T) {
	txs := []core.Transaction{
		tx("2024-06-10", core.TypeExpense, "food", 3000),
		tx("2024-06-20", core.TypeExpense, "food", 2000),
		tx("2024-06-05", core.TypeExpense, "transport", 1500),
		tx("2024-06-01", core.TypeIncome, "salary", 100000),
		tx("2024-06-02", core.TypeExpense, "", 999),
		tx("2024-06-03", core.TypeExpense, "shopping", 0),
	}

	totals := CategoryTotals(txs)

	if got := totals["food"].Cents; got != 5000 {
		t.Errorf("food: expected 5000, got %d", got)
	}
	if got := totals["transport"].Cents; got != 1500 {
		t.Errorf("transport: expected 1500, got %d", got)
	}

	// Income, empty categories and zero amounts leave no keys behind
	if _, ok := totals["salary"]; ok {
		t.Error("income must not appear in expense totals")
	}
	if _, ok := totals[""]; ok {
		t.Error("empty category must not appear")
	}
	if _, ok := totals["shopping"]; ok {
		t.Error("zero amounts must leave the category absent, not zero-valued")
	}
	if len(totals) != 2 {
		t.Errorf("expected 2 categories, got %d", len(totals))
	}
}

func TestPeriodSummary(t *testing.T) {
	txs := []core.Transaction{
		tx("2024-06-01", core.TypeIncome, "salary", 100000),
		tx("2024-06-10", core.TypeExpense, "food", 25050),
	}

	sum := PeriodSummary(txs)
	if sum.Income.Cents != 100000 {
		t.Errorf("income: expected 100000, got %d", sum.Income.Cents)
	}
	if sum.Expenses.Cents != 25050 {
		t.Errorf("expenses: expected 25050, got %d", sum.Expenses.Cents)
	}
	if sum.Balance.Float() != 749.5 {
		t.Errorf("balance: expected 749.5, got %v", sum.Balance.Float())
	}
}

func TestPeriodSummaryNegativeBalance(t *testing.T) {
	txs := []core.Transaction{
		tx("2024-06-01", core.TypeIncome, "salary", 1000),
		tx("2024-06-10", core.TypeExpense, "bills", 5000),
	}

	sum := PeriodSummary(txs)
	if sum.Balance.Cents != -4000 {
		t.Errorf("expected -4000, got %d", sum.Balance.Cents)
	}
}

func TestMonthlySeries(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx("2024-06-01", core.TypeIncome, "salary", 100000),
		tx("2024-06-10", core.TypeExpense, "food", 3000),
		tx("2024-03-05", core.TypeExpense, "bills", 8000),
		tx("2022-01-01", core.TypeExpense, "food", 5000), // outside the window
	}

	entries := MonthlySeries(txs, ref)
	if len(entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(entries))
	}

	// Chronological, oldest first
	for i := 1; i < len(entries); i++ {
		if !(entries[i-1].Key < entries[i].Key) {
			t.Errorf("entries out of order at %d", i)
		}
	}

	last := entries[11]
	if last.Key != "2024-06" || last.Income.Cents != 100000 || last.Expenses.Cents != 3000 || last.Net.Cents != 97000 {
		t.Errorf("unexpected newest entry: %+v", last)
	}
	if last.Label != "Jun 2024" {
		t.Errorf("expected label Jun 2024, got %q", last.Label)
	}

	// Months without activity are zero-filled, not omitted
	var march, empty core.MonthEntry
	for _, e := range entries {
		switch e.Key {
		case "2024-03":
			march = e
		case "2024-01":
			empty = e
		}
	}
	if march.Expenses.Cents != 8000 {
		t.Errorf("march: expected 8000 expenses, got %d", march.Expenses.Cents)
	}
	if empty.Income.Cents != 0 || empty.Expenses.Cents != 0 || empty.Net.Cents != 0 {
		t.Errorf("expected zero-filled entry, got %+v", empty)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		total  int64
		want   float64
	}{
		{"half", 5000, 10000, 50},
		{"full", 10000, 10000, 100},
		{"zero total", 5000, 0, 0},
		{"over total", 15000, 10000, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentage(core.Money{Cents: tc.amount}, core.Money{Cents: tc.total})
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBarWidthClamped(t *testing.T) {
	if got := BarWidth(core.Money{Cents: 15000}, core.Money{Cents: 10000}); got != 100 {
		t.Errorf("expected clamp to 100, got %v", got)
	}
	if got := BarWidth(core.Money{Cents: 5000}, core.Money{Cents: 10000}); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
}
