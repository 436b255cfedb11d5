// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderCreatedEvent is published after an order commits. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database. License strings deliberately stay out
// of the payload; only line counts travel over the broker.
type OrderCreatedEvent struct {
	OrderID      uint64 `json:"order_id"`
	UserID       uint64 `json:"user_id"`
	LineCount    int    `json:"line_count"`
	DigitalLines int    `json:"digital_lines"`
	CreatedAt    string `json:"created_at"`
}
