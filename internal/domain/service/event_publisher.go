package service

import (
	"context"
	"time"
)

// Marketplace event types.
const (
	EventMessageSent    = "message.sent"
	EventProductCreated = "product.created"
)

// MarketplaceEvent is an activity record published for asynchronous consumers
// (notification fan-out, analytics). Delivery is best effort.
type MarketplaceEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Type           string    `json:"type"`
	ActorID        string    `json:"actor_id"`
	RecipientID    string    `json:"recipient_id,omitempty"`
	ProductID      string    `json:"product_id,omitempty"`
	ConversationID string    `json:"conversation_id,omitempty"`
	MessageID      string    `json:"message_id,omitempty"`
	Snippet        string    `json:"snippet,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a marketplace event for async processing
	Publish(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
