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
	"teka/internal/domain/service"
	"teka/internal/errors"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
	now            func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	ProfileRepo    repository.ProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the profile and its credential in one transaction.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := srv.now().UTC()
	profile := &entity.Profile{
		ID:          newID(),
		FullName:    strings.TrimSpace(input.FullName),
		AccountKind: input.AccountKind,
		PhoneNumber: signUpPhone(input.PhonePrefix, input.PhoneNumber),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if profile.AccountKind == "" {
		profile.AccountKind = entity.AccountKindIndividual
	}

	credential := &entity.Credential{
		ID:           newID(),
		UserID:       profile.ID,
		Email:        normalizeEmail(input.Email),
		PasswordHash: hashedPassword,
		CreatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		if err := repoFactory.CredentialRepo().Create(ctx, credential); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
			}

			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign-up failed")
	}

	srv.log(ctx).Info("Account created", slog.String("userID", profile.ID.String()))

	return srv.issue(profile)
}

// SignIn verifies the credential and issues an access token.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	credential, err := srv.credentialRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("userID", credential.UserID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "credential has no profile")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return srv.issue(profile)
}

// Authenticate resolves a bearer token to its principal.
func (srv *accountService) Authenticate(ctx context.Context, accessToken string) (*entity.Principal, error) {
	if accessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	if claims.UserID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return &entity.Principal{ID: claims.UserID}, nil
}

func (srv *accountService) issue(profile *entity.Profile) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Profile:     profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// signUpPhone joins the dialing prefix and the local number, or returns nil when no number was given.
func signUpPhone(prefix, number string) *string {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil
	}

	if prefix == "" {
		prefix = usecase.DefaultPhonePrefix
	}

	phone := prefix + strings.TrimPrefix(number, "0")

	return &phone
}
