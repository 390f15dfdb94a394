package usecase

import (
	"context"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the store view and the member's own profile.
type ProfileUsecase interface {
	// GetSellerPublicView returns a seller's public fields and listings.
	GetSellerPublicView(ctx context.Context, sellerID uuid.UUID, activeOnly bool) (*SellerView, error)

	// GetMyProfile returns the principal's full profile.
	GetMyProfile(ctx context.Context, principal *entity.Principal) (*entity.Profile, error)

	// UpdateMyProfile applies a partial update to the principal's profile.
	UpdateMyProfile(ctx context.Context, principal *entity.Principal, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput is a partial profile update. Nil fields are left unchanged;
// an empty string clears an optional field.
type UpdateProfileInput struct {
	FullName    *string             `json:"full_name,omitempty" validate:"omitempty,min=2,max=120"`
	AccountKind *entity.AccountKind `json:"account_kind,omitempty" validate:"omitempty,oneof=individual professional"`
	PhoneNumber *string             `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	City        *string             `json:"city,omitempty" validate:"omitempty,max=100"`
	ShopName    *string             `json:"shop_name,omitempty" validate:"omitempty,max=120"`
	Bio         *string             `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// --- Output DTOs ---

// SellerView is the public store page of a seller.
type SellerView struct {
	Profile  *entity.PublicProfile `json:"profile"`
	Products []*entity.Product     `json:"products"`
}
