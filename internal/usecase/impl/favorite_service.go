package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
	now          func() time.Time
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite removes the pair if present, otherwise inserts it.
// Both steps are single conditional statements, so concurrent toggles never create duplicates.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (entity.FavoriteState, error) {
	if err := requirePrincipal(principal); err != nil {
		return "", err
	}

	removed, err := srv.favoriteRepo.Remove(ctx, principal.ID, productID)
	if err != nil {
		return "", errors.Wrap(err, "failed to remove favorite")
	}

	if removed {
		srv.log(ctx).Debug("Favorite removed", slog.String("productID", productID.String()))

		return entity.FavoriteStateUnfavorited, nil
	}

	favorite := &entity.Favorite{
		UserID:    principal.ID,
		ProductID: productID,
		CreatedAt: srv.now().UTC(),
	}
	if _, err := srv.favoriteRepo.AddIfAbsent(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return "", errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.String("productID", productID.String()))

	return entity.FavoriteStateFavorited, nil
}

// ListFavorites returns the favorited products in favorite order. Products that no longer resolve are dropped.
func (srv *favoriteService) ListFavorites(ctx context.Context, principal *entity.Principal) ([]*entity.Product, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	if len(favorites) == 0 {
		return []*entity.Product{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(favorites))
	for _, favorite := range favorites {
		productIDs = append(productIDs, favorite.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	result := make([]*entity.Product, 0, len(favorites))
	for _, favorite := range favorites {
		if product, ok := byID[favorite.ProductID]; ok {
			result = append(result, product)
		}
	}

	return result, nil
}

// IsFavorite reports whether the principal has favorited the product.
func (srv *favoriteService) IsFavorite(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (bool, error) {
	if err := requirePrincipal(principal); err != nil {
		return false, err
	}

	exists, err := srv.favoriteRepo.Exists(ctx, principal.ID, productID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}
