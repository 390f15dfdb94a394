// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"teka/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile and credential persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCredentialNotFound is returned when no credential matches an email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateEmail is returned when a credential already uses the email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Create persists a new profile; the ID is the principal's ID.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByIDs retrieves the profiles matching ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// Update persists the editable fields of a profile.
	Update(ctx context.Context, profile *entity.Profile) error
}

// CredentialRepository stores email/password login methods.
type CredentialRepository interface {
	// Create persists a credential, returning ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail retrieves the credential for a lower-cased email.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
