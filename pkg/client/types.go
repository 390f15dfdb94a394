package client

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Profile is a member's own profile.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	AccountKind   string    `json:"account_kind"`
	PhoneNumber   *string   `json:"phone_number,omitempty"`
	City          *string   `json:"city,omitempty"`
	ShopName      *string   `json:"shop_name,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	IsVerifiedPro bool      `json:"is_verified_pro"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicProfile is what other members see of a profile.
type PublicProfile struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"display_name"`
	FullName      string    `json:"full_name"`
	AccountKind   string    `json:"account_kind"`
	City          *string   `json:"city,omitempty"`
	Bio           *string   `json:"bio,omitempty"`
	IsVerifiedPro bool      `json:"is_verified_pro"`
}

// Product is a listing.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	CategoryID  uuid.UUID `json:"category_id"`
	City        string    `json:"city"`
	Condition   string    `json:"condition"`
	PhotoURLs   []string  `json:"photo_urls"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category is a listing category.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductDetail is the product page.
type ProductDetail struct {
	Product     *Product       `json:"product"`
	Category    *Category      `json:"category,omitempty"`
	Seller      *PublicProfile `json:"seller,omitempty"`
	ShareURL    string         `json:"share_url"`
	WhatsAppURL string         `json:"whatsapp_url,omitempty"`
	IsFavorite  bool           `json:"is_favorite"`
}

// ProductFilter narrows ListProducts. Zero fields are ignored.
type ProductFilter struct {
	CategoryID uuid.UUID
	City       string
	Text       string
}

// NewProduct is a listing to publish.
type NewProduct struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	CategoryID  uuid.UUID
	City        string
	Condition   string
	Photos      []Photo
}

// Photo is one image attached to a NewProduct.
type Photo struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// CreatedProduct is the result of publishing a listing.
type CreatedProduct struct {
	Product       *Product `json:"product"`
	SkippedPhotos int      `json:"skipped_photos"`
}

// Conversation is one buyer/seller thread about a product.
type Conversation struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	SellerID    uuid.UUID `json:"seller_id"`
	LastMessage *string   `json:"last_message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConversationView is a conversation with its listing and participants.
type ConversationView struct {
	Conversation
	Product *struct {
		ID         uuid.UUID `json:"id"`
		Title      string    `json:"title"`
		CoverPhoto string    `json:"cover_photo,omitempty"`
		IsActive   bool      `json:"is_active"`
	} `json:"product,omitempty"`
	Buyer  *PublicProfile `json:"buyer,omitempty"`
	Seller *PublicProfile `json:"seller,omitempty"`
}

// Message is one chat message.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// SellerView is a seller's store page.
type SellerView struct {
	Profile  *PublicProfile `json:"profile"`
	Products []*Product     `json:"products"`
}

// SignUpRequest opens an account.
type SignUpRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountKind string `json:"account_kind,omitempty"`
	PhonePrefix string `json:"phone_prefix,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ProfileUpdate is a partial profile update; nil fields are left unchanged.
type ProfileUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	AccountKind *string `json:"account_kind,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	City        *string `json:"city,omitempty"`
	ShopName    *string `json:"shop_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

type authResult struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	Profile     *Profile `json:"profile"`
}
