package postgres

import (
	"context"
	"strings"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so free text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching text anywhere in a column.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == fkProductsSeller {
				return repository.ErrProfileNotFound
			}

			return repository.ErrCategoryNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.IsActive = productM.IsActive
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves every product whose ID is in ids.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products by IDs")
	}

	return toProductDomains(productModels), nil
}

// List returns the products matching filter, newest first. Criteria are conjunctive.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city = ?", city)
	}
	if text := strings.TrimSpace(filter.Text); text != "" {
		pattern := containsPattern(text)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// SetActive flips the soft-removal flag of a product.
func (repo *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{ID: categoryM.ID, Name: categoryM.Name})
	}

	return categories, nil
}

// FindByID retrieves one category.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category by ID")
	}

	return &entity.Category{ID: categoryM.ID, Name: categoryM.Name}, nil
}

// --- Mapper Functions ---

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	photos := make([]string, len(data.PhotoURLs))
	copy(photos, data.PhotoURLs)

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Currency:    entity.Currency(data.Currency),
		CategoryID:  data.CategoryID,
		City:        data.City,
		Condition:   entity.Condition(data.Condition),
		PhotoURLs:   photos,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	photos := datatypes.JSONSlice[string]{}
	photos = append(photos, data.PhotoURLs...)

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Currency:    string(data.Currency),
		CategoryID:  data.CategoryID,
		City:        data.City,
		Condition:   string(data.Condition),
		PhotoURLs:   photos,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
