// Package worker consumes transaction events and appends them to a
// local audit log, one JSON line per event.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budget/internal/amqp"
)

// AuditWorker writes every transaction event it receives to an
// append-only JSONL file
type AuditWorker struct {
	path string
}

func NewAuditWorker(path string) (*AuditWorker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create audit log directory: %w", err)
	}
	return &AuditWorker{path: path}, nil
}

// HandleEvent appends a single event to the audit log
func (w *AuditWorker) HandleEvent(ctx context.Context, msg *amqp.TransactionEventMessage) error {
	line, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}

	slog.InfoContext(ctx, "Recorded audit entry",
		"event", msg.Event,
		"id", msg.ID,
		"path", w.path)

	return nil
}
