package postgres

import (
	"context"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Remove deletes the pair in one statement and reports whether a row existed.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite")
	}

	return result.RowsAffected > 0, nil
}

// AddIfAbsent inserts the pair with ON CONFLICT DO NOTHING and reports whether a row was inserted.
func (repo *favoriteRepository) AddIfAbsent(ctx context.Context, favorite *entity.Favorite) (bool, error) {
	favoriteM := &model.FavoriteModel{
		UserID:    favorite.UserID,
		ProductID: favorite.ProductID,
		CreatedAt: favorite.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favoriteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			if violatedConstraint(result.Error) == fkFavoritesUser {
				return false, repository.ErrProfileNotFound
			}

			return false, repository.ErrProductNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return result.RowsAffected > 0, nil
}

// Exists reports whether the pair exists.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check favorite")
	}

	return count > 0, nil
}

// FindByUser returns the user's favorites, most recent first.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, &entity.Favorite{
			UserID:    favoriteM.UserID,
			ProductID: favoriteM.ProductID,
			CreatedAt: favoriteM.CreatedAt,
		})
	}

	return favorites, nil
}
