// Package report computes derived financial views from the raw
// transaction collection. Everything here is a pure function of its
// inputs; nothing is cached between calls.
package report

import (
	"time"

	"budget/internal/core"
)

// SelectMonth returns the transactions whose date falls in the given
// calendar month. Transactions with missing or malformed dates are
// excluded, never an error.
func SelectMonth(txs []core.Transaction, key core.MonthKey) []core.Transaction {
	var out []core.Transaction
	for _, t := range txs {
		mk, ok := t.Date.MonthKey()
		if !ok {
			continue
		}
		if mk == key {
			out = append(out, t)
		}
	}
	return out
}

// TrailingMonths produces count consecutive month keys ending at the
// calendar month containing ref, oldest first.
func TrailingMonths(ref time.Time, count int) []core.MonthKey {
	if count <= 0 {
		return nil
	}
	keys := make([]core.MonthKey, count)
	// Anchor on the first of the month so stepping back never skips
	// short months.
	month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := count - 1; i >= 0; i-- {
		keys[i] = core.MonthKeyOf(month)
		month = month.AddDate(0, -1, 0)
	}
	return keys
}
