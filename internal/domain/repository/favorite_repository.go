package repository

import (
	"context"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository stores the (user, product) favorite relation.
// Both mutating methods are single atomic statements backed by the pair's uniqueness.
type FavoriteRepository interface {
	// Remove deletes the pair and reports whether a row existed.
	Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// AddIfAbsent inserts the pair unless it already exists and reports whether a row was inserted.
	AddIfAbsent(ctx context.Context, favorite *entity.Favorite) (bool, error)

	// Exists reports whether the pair exists.
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// FindByUser returns the user's favorites, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
