package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget/internal/amqp"
	"budget/internal/core"
	"budget/internal/ledger"
	"budget/internal/report"
)

// TransactionService orchestrates transaction operations across the
// ledger store and AMQP
type TransactionService struct {
	store      *ledger.Store
	amqpClient *amqp.Client
}

func NewTransactionService(store *ledger.Store, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		store:      store,
		amqpClient: amqpClient,
	}
}

// AddTransaction validates and records a transaction, then publishes a
// created event
func (s *TransactionService) AddTransaction(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	tx, err := s.store.Add(ctx, draft)
	if err != nil {
		return core.Transaction{}, err
	}

	// Publish async event (non-blocking)
	if err := s.publishEvent(ctx, amqp.EventTransactionCreated, tx); err != nil {
		slog.ErrorContext(ctx, "Failed to publish created event",
			"id", tx.ID, "error", err)
		// Don't fail the request - transaction is saved locally
	}

	return tx, nil
}

// DeleteTransaction removes a transaction by id. Unknown ids are a
// no-op and reported as not found.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) bool {
	tx, removed := s.store.Remove(ctx, id)
	if !removed {
		return false
	}

	if err := s.publishEvent(ctx, amqp.EventTransactionDeleted, tx); err != nil {
		slog.ErrorContext(ctx, "Failed to publish deleted event",
			"id", id, "error", err)
		// Don't fail the request - transaction is deleted locally
	}

	return true
}

// ListTransactions returns the full collection, newest first.
func (s *TransactionService) ListTransactions() []core.Transaction {
	return s.store.List()
}

// CategoryTotals returns per-category expense totals for the given month.
func (s *TransactionService) CategoryTotals(month core.MonthKey) core.CategoryTotals {
	return report.CategoryTotals(report.SelectMonth(s.store.List(), month))
}

// PeriodSummary returns income, expenses and balance for the given month.
func (s *TransactionService) PeriodSummary(month core.MonthKey) core.PeriodSummary {
	return report.PeriodSummary(report.SelectMonth(s.store.List(), month))
}

// MonthlySeries returns the trailing 12-month trend ending at the month
// containing ref, oldest first.
func (s *TransactionService) MonthlySeries(ref time.Time) []core.MonthEntry {
	return report.MonthlySeries(s.store.List(), ref)
}

// Categories returns the fixed category registry.
func (s *TransactionService) Categories() []core.Category {
	return core.Categories()
}

func (s *TransactionService) publishEvent(ctx context.Context, event string, tx core.Transaction) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping event")
		return nil
	}

	return s.amqpClient.PublishTransactionEvent(ctx, event, tx)
}

// Close closes the AMQP connection if one is attached
func (s *TransactionService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close transaction service: %w", err)
		}
	}
	return nil
}
