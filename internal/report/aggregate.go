package report

import (
	"time"

	"budget/internal/core"
)

// CategoryTotals sums expense amounts per category over the given
// (already month-filtered) set. Unknown category ids accumulate under
// their own key; resolving them to display metadata happens
// downstream. Categories without a positive total are absent from the
// result.
func CategoryTotals(txs []core.Transaction) core.CategoryTotals {
	totals := make(core.CategoryTotals)
	for _, t := range txs {
		if t.Type != core.TypeExpense || t.Category == "" || t.Amount.Cents <= 0 {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// PeriodSummary sums income and expenses over the given set and
// derives the balance. Records with missing amounts contribute zero.
func PeriodSummary(txs []core.Transaction) core.PeriodSummary {
	var s core.PeriodSummary
	for _, t := range txs {
		switch t.Type {
		case core.TypeIncome:
			s.Income = s.Income.Add(t.Amount)
		case core.TypeExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// MonthlySeries builds the trailing 12-month trend ending at the month
// containing ref, oldest first. Months with no activity yield
// zero-valued entries rather than being omitted.
func MonthlySeries(txs []core.Transaction, ref time.Time) []core.MonthEntry {
	keys := TrailingMonths(ref, 12)
	entries := make([]core.MonthEntry, 0, len(keys))
	for _, key := range keys {
		sum := PeriodSummary(SelectMonth(txs, key))
		entries = append(entries, core.MonthEntry{
			Key:      key,
			Label:    key.Label(),
			Income:   sum.Income,
			Expenses: sum.Expenses,
			Net:      sum.Balance,
		})
	}
	return entries
}

// Percentage returns amount as a share of total in percent. A
// non-positive total yields zero. The raw value is not clamped.
func Percentage(amount, total core.Money) float64 {
	if total.Cents <= 0 {
		return 0
	}
	return float64(amount.Cents) / float64(total.Cents) * 100
}

// BarWidth is the percentage clamped to [0, 100], for display-bar
// sizing only.
func BarWidth(amount, total core.Money) float64 {
	p := Percentage(amount, total)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
