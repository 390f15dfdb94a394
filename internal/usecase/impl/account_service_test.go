package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/repository"
	"teka/internal/domain/service"
	mockRepo "teka/internal/mocks/repository"
	mockSvc "teka/internal/mocks/service"
	"teka/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *mockRepo.MockTransactionManager
	credentialRepo *mockRepo.MockCredentialRepository
	profileRepo    *mockRepo.MockProfileRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		CredentialRepo: credentialRepo,
		ProfileRepo:    profileRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return accountServiceFixtures{
		service:        srv,
		txManager:      txManager,
		credentialRepo: credentialRepo,
		profileRepo:    profileRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestAccountService_SignUp_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.SignUpInput{
		FullName:    "  Grace Mbuyi ",
		Email:       "Grace@Example.CD",
		Password:    "secret1",
		AccountKind: entity.AccountKindProfessional,
		PhoneNumber: "0812345678",
	}

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			credentialRepo := mockRepo.NewMockCredentialRepository(t)

			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().CredentialRepo().Return(credentialRepo)
			profileRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
				return p.FullName == "Grace Mbuyi" &&
					p.AccountKind == entity.AccountKindProfessional &&
					p.PhoneNumber != nil && *p.PhoneNumber == "+243812345678"
			})).Return(nil)
			credentialRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
				return c.Email == "grace@example.cd" && c.PasswordHash == "hashed"
			})).Return(nil)

			return fn(factory)
		})
	fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("token", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(time.Hour)

	out, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, "Grace Mbuyi", out.Profile.FullName)
}

func TestAccountService_SignUp_DefaultsToIndividual(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			credentialRepo := mockRepo.NewMockCredentialRepository(t)

			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().CredentialRepo().Return(credentialRepo)
			profileRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
				return p.AccountKind == entity.AccountKindIndividual && p.PhoneNumber == nil
			})).Return(nil)
			credentialRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

			return fn(factory)
		})
	fx.tokenService.EXPECT().GenerateAccessToken(mock.Anything).Return("token", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(time.Hour)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "secret1"})

	require.NoError(t, err)
}

func TestAccountService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			credentialRepo := mockRepo.NewMockCredentialRepository(t)

			factory.EXPECT().ProfileRepo().Return(profileRepo)
			factory.EXPECT().CredentialRepo().Return(credentialRepo)
			profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
			credentialRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

			return fn(factory)
		})

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_SignUp_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.SignUpInput
	}{
		{"short password", &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "12345"}},
		{"bad email", &usecase.SignUpInput{FullName: "Jo", Email: "jo", Password: "secret1"}},
		{"short name", &usecase.SignUpInput{FullName: "J", Email: "jo@example.cd", Password: "secret1"}},
		{"letters in phone", &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "secret1", PhoneNumber: "08abc1234"}},
		{"short phone", &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "secret1", PhoneNumber: "123"}},
		{"unknown kind", &usecase.SignUpInput{FullName: "Jo", Email: "jo@example.cd", Password: "secret1", AccountKind: "admin"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			_, err := fx.service.SignUp(context.Background(), tc.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().FindByEmail(ctx, "jo@example.cd").
		Return(&entity.Credential{UserID: userID, Email: "jo@example.cd", PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, FullName: "Jo"}, nil)
	fx.tokenService.EXPECT().GenerateAccessToken(userID).Return("token", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(24 * time.Hour)

	out, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "JO@example.cd", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, userID, out.Profile.ID)
}

func TestAccountService_SignIn_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByEmail(ctx, "nobody@example.cd").Return(nil, repository.ErrCredentialNotFound)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "nobody@example.cd", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByEmail(ctx, "jo@example.cd").
			Return(&entity.Credential{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "jo@example.cd", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_SignIn_StorageFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByEmail(ctx, "jo@example.cd").
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find credential"))

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "jo@example.cd", Password: "secret1"})

	assert.True(t, domainerrors.IsStorageFailure(err))
}

func TestAccountService_Authenticate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

	principal, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, userID, principal.ID)

	_, err = fx.service.Authenticate(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = fx.service.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSignUpPhone(t *testing.T) {
	assert.Nil(t, signUpPhone("", "  "))
	assert.Equal(t, "+243812345678", *signUpPhone("", "0812345678"))
	assert.Equal(t, "+33612345678", *signUpPhone("+33", "612345678"))
}
