package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"
	"time"

	"teka/config"
	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/domain/service"
	"teka/internal/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

const defaultMaxPhotoSize int64 = 5 << 20

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	profileRepo  repository.ProfileRepository
	favoriteRepo repository.FavoriteRepository
	photoStorage service.PhotoStorage
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	maxPhotos    int
	maxPhotoSize int64
	cities       []string
	logger       *slog.Logger
	now          func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ProfileRepo  repository.ProfileRepository
	FavoriteRepo repository.FavoriteRepository
	PhotoStorage service.PhotoStorage
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		profileRepo:  params.ProfileRepo,
		favoriteRepo: params.FavoriteRepo,
		photoStorage: params.PhotoStorage,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		maxPhotos:    entity.MaxProductPhotos,
		maxPhotoSize: defaultMaxPhotoSize,
		logger:       params.Logger,
		now:          time.Now,
	}

	if params.Config == nil {
		return srv
	}

	if catalog := params.Config.Catalog; catalog != nil {
		if catalog.MaxPhotos > 0 && catalog.MaxPhotos < entity.MaxProductPhotos {
			srv.maxPhotos = catalog.MaxPhotos
		}
		srv.cities = slices.Clone(catalog.Cities)
	}

	if storage := params.Config.Storage; storage != nil && storage.MaxPhotoSize != "" {
		size, err := bytes.Parse(storage.MaxPhotoSize)
		if err != nil || size <= 0 {
			params.Logger.Warn("Invalid storage.maxPhotoSize, using default",
				slog.String("value", storage.MaxPhotoSize),
				slog.Int64("default", defaultMaxPhotoSize),
			)
		} else {
			srv.maxPhotoSize = size
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the active listings matching the query, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, query *usecase.ProductQuery) ([]*entity.Product, error) {
	filter := repository.ProductFilter{ActiveOnly: true}
	if query != nil {
		filter.CategoryID = query.CategoryID
		filter.City = strings.TrimSpace(query.City)
		filter.Text = strings.TrimSpace(query.Text)
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct assembles the product page.
func (srv *catalogService) GetProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*usecase.ProductDetail, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	detail := &usecase.ProductDetail{
		Product:  product,
		ShareURL: srv.qrService.ProductURL(product.ID),
	}

	category, err := srv.categoryRepo.FindByID(ctx, product.CategoryID)
	switch {
	case err == nil:
		detail.Category = category
	case errors.Is(err, repository.ErrCategoryNotFound):
		srv.log(ctx).Warn("Product references a missing category",
			slog.String("productID", product.ID.String()),
			slog.String("categoryID", product.CategoryID.String()),
		)
	default:
		return nil, errors.Wrap(err, "failed to load category")
	}

	seller, err := srv.profileRepo.FindByID(ctx, product.SellerID)
	switch {
	case err == nil:
		detail.Seller = seller.Public()
		if seller.PhoneNumber != nil {
			detail.WhatsAppURL = whatsAppLink(*seller.PhoneNumber, product.Title)
		}
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Warn("Product seller has no profile", slog.String("sellerID", product.SellerID.String()))
	default:
		return nil, errors.Wrap(err, "failed to load seller")
	}

	if principal != nil {
		favorite, err := srv.favoriteRepo.Exists(ctx, principal.ID, product.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check favorite")
		}
		detail.IsFavorite = favorite
	}

	return detail, nil
}

// ListCategories returns the categories ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListCities returns the configured city list.
func (srv *catalogService) ListCities(_ context.Context) []string {
	return slices.Clone(srv.cities)
}

// trimProductInput returns a copy of input with its free-text fields trimmed,
// so length bounds apply to what gets stored.
func trimProductInput(input *usecase.CreateProductInput) *usecase.CreateProductInput {
	if input == nil {
		return nil
	}

	trimmed := *input
	trimmed.Title = strings.TrimSpace(input.Title)
	trimmed.Description = strings.TrimSpace(input.Description)
	trimmed.City = strings.TrimSpace(input.City)

	return &trimmed
}

// CreateProduct uploads the photos then stores the listing.
func (srv *catalogService) CreateProduct(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.CreateProductInput,
	photos []usecase.PhotoUpload,
) (*usecase.CreateProductOutput, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	input = trimProductInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if len(photos) > srv.maxPhotos {
		return nil, domainerrors.ErrValidationFailed.WithDetails("too many photos")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	photoURLs, uploadedKeys, skipped := srv.uploadPhotos(ctx, principal.ID, photos)

	now := srv.now().UTC()
	product := &entity.Product{
		ID:          newID(),
		SellerID:    principal.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		CategoryID:  input.CategoryID,
		City:        input.City,
		Condition:   input.Condition,
		PhotoURLs:   photoURLs,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.discardPhotos(ctx, uploadedKeys)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.Int("photos", len(photoURLs)),
		slog.Int("skippedPhotos", skipped),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:       service.EventProductCreated,
		ActorID:    principal.ID.String(),
		ProductID:  product.ID.String(),
		Snippet:    entity.SnippetOf(product.Title),
		OccurredAt: now,
	})

	return &usecase.CreateProductOutput{Product: product, SkippedPhotos: skipped}, nil
}

// uploadPhotos stores each photo under <seller>/<uuid>.<ext>. Rejected or failed photos are skipped.
func (srv *catalogService) uploadPhotos(ctx context.Context, sellerID uuid.UUID, photos []usecase.PhotoUpload) ([]string, []string, int) {
	urls := make([]string, 0, len(photos))
	keys := make([]string, 0, len(photos))
	skipped := 0

	for i, photo := range photos {
		logger := srv.log(ctx).With(slog.Int("photo", i), slog.String("filename", photo.Filename))

		if !strings.HasPrefix(photo.ContentType, "image/") {
			logger.Warn("Skipping photo with unsupported content type", slog.String("contentType", photo.ContentType))
			skipped++

			continue
		}

		if photo.Size > srv.maxPhotoSize {
			logger.Warn("Skipping oversized photo", slog.Int64("size", photo.Size), slog.Int64("max", srv.maxPhotoSize))
			skipped++

			continue
		}

		key := sellerID.String() + "/" + newID().String() + photoExtension(photo.Filename, photo.ContentType)

		url, err := srv.photoStorage.Upload(ctx, key, photo.ContentType, io.LimitReader(photo.Content, srv.maxPhotoSize))
		if err != nil {
			logger.Warn("Photo upload failed, skipping", slog.Any("error", err))
			skipped++

			continue
		}

		urls = append(urls, url)
		keys = append(keys, key)
	}

	return urls, keys, skipped
}

func (srv *catalogService) discardPhotos(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := srv.photoStorage.Delete(ctx, key); err != nil {
			srv.log(ctx).Warn("Failed to delete orphaned photo", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// photoExtension prefers the filename extension and falls back to the content type.
func photoExtension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}

// DeactivateProduct clears IsActive. Deactivating an inactive listing is a no-op.
func (srv *catalogService) DeactivateProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if !product.IsOwnedBy(principal.ID) {
		return errors.WithStack(domainerrors.ErrProductOwnershipViolation)
	}

	if !product.IsActive {
		return nil
	}

	if err := srv.productRepo.SetActive(ctx, productID, false); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.log(ctx).Info("Product deactivated", slog.String("productID", productID.String()))

	return nil
}

// ProductShareQR renders the product URL as a PNG.
func (srv *catalogService) ProductShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// OpenPhoto streams a stored photo.
func (srv *catalogService) OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" {
		return nil, "", errors.WithStack(domainerrors.ErrNotFound)
	}

	reader, contentType, err := srv.photoStorage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			return nil, "", errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, "", errors.Wrap(err, "failed to open photo")
	}

	return reader, contentType, nil
}

func (srv *catalogService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
