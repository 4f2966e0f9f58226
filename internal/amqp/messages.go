package amqp

import (
	"encoding/json"
	"time"

	"budget/internal/core"
)

const (
	EventTransactionCreated = "transaction.created"
	EventTransactionDeleted = "transaction.deleted"
)

// TransactionEventMessage notifies downstream consumers that the
// transaction collection changed. It carries a snapshot of the
// transaction so consumers do not need read access to the store.
type TransactionEventMessage struct {
	Event       string    `json:"event"`
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionEventMessage builds an event message from a transaction snapshot
func NewTransactionEventMessage(event string, tx core.Transaction) *TransactionEventMessage {
	return &TransactionEventMessage{
		Event:       event,
		ID:          tx.ID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount.Float(),
		Date:        string(tx.Date),
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// FromJSON creates a message from JSON bytes
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
