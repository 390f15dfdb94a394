package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the (user, product) relation. At most one exists per pair.
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteState is the membership state after a toggle.
type FavoriteState string

const (
	FavoriteStateFavorited   FavoriteState = "favorited"
	FavoriteStateUnfavorited FavoriteState = "unfavorited"
)
