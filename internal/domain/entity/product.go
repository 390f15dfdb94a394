package entity

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the currency a listing is priced in.
type Currency string

const (
	CurrencyCDF Currency = "CDF"
	CurrencyUSD Currency = "USD"
)

// IsValid checks if the Currency is supported.
func (c Currency) IsValid() bool {
	return c == CurrencyCDF || c == CurrencyUSD
}

// Condition describes the state of the item being sold.
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionLikeNew   Condition = "like_new"
	ConditionGood      Condition = "good"
	ConditionForRepair Condition = "for_repair"
)

// IsValid checks if the Condition is a known value.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionForRepair:
		return true
	default:
		return false
	}
}

// MaxProductPhotos is the hard upper bound of photos attached to one listing.
const MaxProductPhotos = 4

// Product is a classified listing. Only its seller may mutate it, and it is
// soft-removed by clearing IsActive.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    Currency  `json:"currency"`
	CategoryID  uuid.UUID `json:"category_id"`
	City        string    `json:"city"`
	Condition   Condition `json:"condition"`
	PhotoURLs   []string  `json:"photo_urls"` // Ordered, at most MaxProductPhotos.
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID is the seller of the product.
func (p *Product) IsOwnedBy(userID uuid.UUID) bool {
	return p.SellerID == userID
}

// CoverPhoto returns the first photo URL or an empty string.
func (p *Product) CoverPhoto() string {
	if len(p.PhotoURLs) == 0 {
		return ""
	}

	return p.PhotoURLs[0]
}

// Category is static reference data used to classify listings.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
