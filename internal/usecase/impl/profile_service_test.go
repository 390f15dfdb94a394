package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	mockRepo "teka/internal/mocks/repository"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	srv := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		ProductRepo: productRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return profileServiceFixtures{
		service:     srv,
		profileRepo: profileRepo,
		productRepo: productRepo,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestProfileService_GetSellerPublicView(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	phone := "+243812345678"
	seller := &entity.Profile{ID: uuid.New(), FullName: "Mama Nsimba", ShopName: ptr("Chez Mama"), PhoneNumber: &phone}
	products := []*entity.Product{{ID: uuid.New(), SellerID: seller.ID, IsActive: true}}

	fx.profileRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.productRepo.EXPECT().List(ctx, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return f.SellerID != nil && *f.SellerID == seller.ID && f.ActiveOnly
	})).Return(products, nil)

	view, err := fx.service.GetSellerPublicView(ctx, seller.ID, true)

	require.NoError(t, err)
	assert.Equal(t, "Chez Mama", view.Profile.DisplayName)
	assert.Equal(t, products, view.Products)
}

func TestProfileService_GetSellerPublicView_UnknownSeller(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetSellerPublicView(ctx, id, false)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetMyProfile_RequiresPrincipal(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetMyProfile(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProfileService_UpdateMyProfile_AppliesPatch(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	me := &entity.Principal{ID: uuid.New()}
	existing := &entity.Profile{
		ID:          me.ID,
		FullName:    "Grace",
		AccountKind: entity.AccountKindIndividual,
		City:        ptr("Goma"),
		Bio:         ptr("Ancienne bio"),
	}

	fx.profileRepo.EXPECT().FindByID(ctx, me.ID).Return(existing, nil)
	fx.profileRepo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.FullName == "Grace Mbuyi" &&
			p.AccountKind == entity.AccountKindProfessional &&
			p.ShopName != nil && *p.ShopName == "Grace Boutique" &&
			p.City != nil && *p.City == "Goma" &&
			p.Bio == nil
	})).Return(nil)

	updated, err := fx.service.UpdateMyProfile(ctx, me, &usecase.UpdateProfileInput{
		FullName:    ptr(" Grace Mbuyi "),
		AccountKind: ptr(entity.AccountKindProfessional),
		ShopName:    ptr("Grace Boutique"),
		Bio:         ptr("  "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Grace Boutique", updated.DisplayName())
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestProfileService_UpdateMyProfile_Invalid(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateMyProfile(context.Background(), &entity.Principal{ID: uuid.New()}, &usecase.UpdateProfileInput{
		AccountKind: ptr(entity.AccountKind("admin")),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
