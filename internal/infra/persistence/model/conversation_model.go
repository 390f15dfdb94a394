package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. At most one row exists
// per (product_id, buyer_id, seller_id).
type ConversationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_triple"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_triple;index"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_triple;index"`
	LastMessage *string   `gorm:"type:varchar(160)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Buyer   *ProfileModel `gorm:"foreignKey:BuyerID;constraint:OnDelete:RESTRICT"`
	Seller  *ProfileModel `gorm:"foreignKey:SellerID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel mirrors the append-only 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_conversation_created"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Content        string    `gorm:"type:text;not null;check:btrim(content) <> ''"`
	CreatedAt      time.Time `gorm:"index:idx_messages_conversation_created"`

	Conversation *ConversationModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Sender       *ProfileModel      `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
