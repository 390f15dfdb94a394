package impl

import (
	"context"
	"log/slog"
	"strings"
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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSellerPublicView returns the seller's public profile and listings, newest first.
func (srv *profileService) GetSellerPublicView(ctx context.Context, sellerID uuid.UUID, activeOnly bool) (*usecase.SellerView, error) {
	profile, err := srv.findProfile(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, repository.ProductFilter{
		SellerID:   &sellerID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return &usecase.SellerView{
		Profile:  profile.Public(),
		Products: products,
	}, nil
}

// GetMyProfile returns the principal's own profile.
func (srv *profileService) GetMyProfile(ctx context.Context, principal *entity.Principal) (*entity.Profile, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	return srv.findProfile(ctx, principal.ID)
}

// UpdateMyProfile applies the non-nil fields of input.
func (srv *profileService) UpdateMyProfile(ctx context.Context, principal *entity.Principal, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	profile, err := srv.findProfile(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.AccountKind != nil {
		profile.AccountKind = *input.AccountKind
	}
	applyOptional(&profile.PhoneNumber, input.PhoneNumber)
	applyOptional(&profile.City, input.City)
	applyOptional(&profile.ShopName, input.ShopName)
	applyOptional(&profile.Bio, input.Bio)
	profile.UpdatedAt = srv.now().UTC()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", profile.ID.String()))

	return profile, nil
}

// applyOptional sets *field to the trimmed value, or clears it when the value is blank.
func applyOptional(field **string, value *string) {
	if value == nil {
		return
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		*field = nil

		return
	}

	*field = &trimmed
}

func (srv *profileService) findProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
