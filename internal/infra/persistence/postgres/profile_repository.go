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
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by its ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByIDs retrieves every profile whose ID is in ids.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profiles by IDs")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// Update persists the editable fields of a profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":    profile.FullName,
			"account_kind": string(profile.AccountKind),
			"phone_number": profile.PhoneNumber,
			"city":         profile.City,
			"shop_name":    profile.ShopName,
			"bio":          profile.Bio,
			"updated_at":   profile.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a credential, mapping the unique email index to ErrDuplicateEmail.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByEmail retrieves the credential for an email, compared case-insensitively.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find credential by email")
	}

	return toCredentialDomain(&credentialM), nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:            data.ID,
		FullName:      data.FullName,
		AccountKind:   entity.AccountKind(data.AccountKind),
		PhoneNumber:   data.PhoneNumber,
		City:          data.City,
		ShopName:      data.ShopName,
		Bio:           data.Bio,
		IsVerifiedPro: data.IsVerifiedPro,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:            data.ID,
		FullName:      data.FullName,
		AccountKind:   string(data.AccountKind),
		PhoneNumber:   data.PhoneNumber,
		City:          data.City,
		ShopName:      data.ShopName,
		Bio:           data.Bio,
		IsVerifiedPro: data.IsVerifiedPro,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        strings.ToLower(strings.TrimSpace(data.Email)),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
