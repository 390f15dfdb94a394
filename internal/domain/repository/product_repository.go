package repository

import (
	"context"
	"errors"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductFilter is the conjunctive filter applied when listing products.
// Zero values disable the corresponding criterion.
type ProductFilter struct {
	CategoryID *uuid.UUID
	City       string
	Text       string // Case-insensitive substring of title OR description.
	SellerID   *uuid.UUID
	ActiveOnly bool
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the products matching ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns the products matching filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// SetActive flips the soft-removal flag of a product.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// CategoryRepository reads the static category reference data.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves one category.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
