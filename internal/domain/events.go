package domain

import "time"

// Event types
const (
	EventTypeTransactionCreated   = "transaction.created"
	EventTypeTransactionUpdated   = "transaction.updated"
	EventTypeTransactionConfirmed = "transaction.confirmed"
	EventTypeTransactionCancelled = "transaction.cancelled"
	EventTypeTransactionDeleted   = "transaction.deleted"
)

// Aggregate types
const (
	AggregateTypeTransaction = "transaction"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// TransactionCreatedEvent payload
type TransactionCreatedEvent struct {
	TransactionID string `json:"transaction_id"`
	Description   string `json:"description"`
	TotalAmount   string `json:"total_amount"`
	FundingType   string `json:"funding_type"`
	EventAt       string `json:"event_at"`
}

// TransactionStatusChangedEvent payload, shared by confirm and cancel events.
type TransactionStatusChangedEvent struct {
	TransactionID string `json:"transaction_id"`
	FromStatus    string `json:"from_status"`
	ToStatus      string `json:"to_status"`
	Message       string `json:"message"`
}

// TransactionDeletedEvent payload
type TransactionDeletedEvent struct {
	TransactionID string `json:"transaction_id"`
	Description   string `json:"description"`
}
