package usecase

import (
	"context"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationUsecase defines buyer/seller messaging.
type ConversationUsecase interface {
	// OpenOrCreateConversation returns the single conversation of (product, principal, seller), creating it if needed.
	OpenOrCreateConversation(ctx context.Context, principal *entity.Principal, productID, sellerID uuid.UUID) (*entity.Conversation, error)

	// ContactSeller resolves the product's seller and opens the conversation with them.
	ContactSeller(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*entity.Conversation, error)

	// SendMessage appends a message and refreshes the conversation summary atomically.
	SendMessage(ctx context.Context, principal *entity.Principal, conversationID uuid.UUID, content string) (*entity.Message, error)

	// ListMessages returns the conversation's messages in ascending creation order.
	ListMessages(ctx context.Context, principal *entity.Principal, conversationID uuid.UUID) ([]*entity.Message, error)

	// GetConversation returns one conversation the principal takes part in.
	GetConversation(ctx context.Context, principal *entity.Principal, conversationID uuid.UUID) (*ConversationView, error)

	// ListConversations returns the principal's conversations, most recently updated first.
	ListConversations(ctx context.Context, principal *entity.Principal) ([]*ConversationView, error)
}

// --- Output DTOs ---

// ConversationView is a conversation with the names and listing it refers to.
type ConversationView struct {
	*entity.Conversation
	Product *ProductSummary       `json:"product,omitempty"`
	Buyer   *entity.PublicProfile `json:"buyer,omitempty"`
	Seller  *entity.PublicProfile `json:"seller,omitempty"`
}

// ProductSummary is the listing excerpt shown next to a conversation.
type ProductSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	CoverPhoto string    `json:"cover_photo,omitempty"`
	IsActive   bool      `json:"is_active"`
}
