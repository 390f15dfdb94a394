package repository

import (
	"context"
	"errors"
	"time"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for conversation-related database operations.
type ConversationRepository interface {
	// CreateIfAbsent inserts the conversation unless one already exists for its
	// (product, buyer, seller) triple. It reports whether a row was inserted; when
	// false the caller must read the existing row with FindByTriple.
	CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (bool, error)

	// FindByTriple retrieves the conversation for a (product, buyer, seller) triple.
	FindByTriple(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*entity.Conversation, error)

	// FindByID retrieves a conversation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindByParticipant returns conversations where userID is buyer or seller, most recently updated first.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// UpdateSummary sets the last-message snippet and update time.
	UpdateSummary(ctx context.Context, id uuid.UUID, lastMessage string, updatedAt time.Time) error
}

// MessageRepository stores append-only conversation messages.
type MessageRepository interface {
	// Create appends a message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByConversation returns the messages of a conversation in ascending creation order.
	FindByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
}
