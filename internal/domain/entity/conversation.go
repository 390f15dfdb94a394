package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message thread between a buyer and a seller about one product.
// At most one exists per (ProductID, BuyerID, SellerID) triple. It is never deleted.
type Conversation struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	SellerID    uuid.UUID `json:"seller_id"`
	LastMessage *string   `json:"last_message"` // Snippet of the most recent message, nil until the first one.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"` // Bumped on every new message.
}

// HasParticipant reports whether userID is the buyer or the seller.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.BuyerID == userID || c.SellerID == userID
}

// Counterpart returns the other participant for userID.
func (c *Conversation) Counterpart(userID uuid.UUID) uuid.UUID {
	if c.BuyerID == userID {
		return c.SellerID
	}

	return c.BuyerID
}

// Message is an append-only entry of a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// MaxLastMessageSnippet bounds the length, in runes, of Conversation.LastMessage.
const MaxLastMessageSnippet = 120

// SnippetOf shortens content to MaxLastMessageSnippet runes.
func SnippetOf(content string) string {
	runes := []rune(content)
	if len(runes) <= MaxLastMessageSnippet {
		return content
	}

	return string(runes[:MaxLastMessageSnippet-1]) + "…"
}
