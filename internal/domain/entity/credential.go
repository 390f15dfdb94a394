package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is an email/password login method bound to a profile.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links the credential to the profile it authenticates.
	Email        string    // Lower-cased login identifier, unique across the system.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
}
