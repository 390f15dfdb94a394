package usecase

import (
	"context"
	"io"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines listing search, detail and publication.
type CatalogUsecase interface {
	// ListProducts returns active listings matching every set criterion, newest first.
	ListProducts(ctx context.Context, query *ProductQuery) ([]*entity.Product, error)

	// GetProduct returns a listing with its category, seller and contact links.
	// principal may be nil; when set, IsFavorite reflects the caller's favorites.
	GetProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) (*ProductDetail, error)

	// ListCategories returns the categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListCities returns the cities offered by the forms.
	ListCities(ctx context.Context) []string

	// CreateProduct validates input, uploads the photos and stores the listing.
	// A photo that fails to upload is skipped and counted in SkippedPhotos.
	CreateProduct(ctx context.Context, principal *entity.Principal, input *CreateProductInput, photos []PhotoUpload) (*CreateProductOutput, error)

	// DeactivateProduct soft-removes a listing. Only its seller may do so.
	DeactivateProduct(ctx context.Context, principal *entity.Principal, productID uuid.UUID) error

	// ProductShareQR renders the listing's public URL as a PNG QR code.
	ProductShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error)

	// OpenPhoto streams a stored listing photo.
	OpenPhoto(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// --- Input DTOs ---

// ProductQuery is the conjunctive listing filter. Empty fields are ignored.
type ProductQuery struct {
	CategoryID *uuid.UUID
	City       string
	Text       string
}

// CreateProductInput defines the fields of a new listing.
type CreateProductInput struct {
	Title       string           `json:"title" form:"title" validate:"required,min=3,max=200"`
	Description string           `json:"description" form:"description" validate:"required,min=10,max=2000"`
	Price       float64          `json:"price" form:"price" validate:"gte=0.01,lte=999999999999.99"`
	Currency    entity.Currency  `json:"currency" form:"currency" validate:"required,oneof=CDF USD"`
	CategoryID  uuid.UUID        `json:"category_id" form:"category_id" validate:"required"`
	City        string           `json:"city" form:"city" validate:"required,min=2,max=100"`
	Condition   entity.Condition `json:"condition" form:"condition" validate:"required,oneof=new like_new good for_repair"`
}

// PhotoUpload is one photo attached to a new listing.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// --- Output DTOs ---

// ProductDetail aggregates what the product page shows.
type ProductDetail struct {
	Product     *entity.Product       `json:"product"`
	Category    *entity.Category      `json:"category,omitempty"`
	Seller      *entity.PublicProfile `json:"seller,omitempty"`
	ShareURL    string                `json:"share_url"`
	WhatsAppURL string                `json:"whatsapp_url,omitempty"`
	IsFavorite  bool                  `json:"is_favorite"`
}

// CreateProductOutput is the stored listing and the number of photos that could not be uploaded.
type CreateProductOutput struct {
	Product       *entity.Product `json:"product"`
	SkippedPhotos int             `json:"skipped_photos"`
}
