package usecase

import (
	"context"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the favorite toggle and the favorites list.
type FavoriteUsecase interface {
	// ToggleFavorite flips the (principal, product) relation and returns the resulting state.
	ToggleFavorite(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (entity.FavoriteState, error)

	// ListFavorites returns the favorited products, most recently favorited first.
	ListFavorites(ctx context.Context, principal *entity.Principal) ([]*entity.Product, error)

	// IsFavorite reports whether the principal has favorited the product.
	IsFavorite(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (bool, error)
}
