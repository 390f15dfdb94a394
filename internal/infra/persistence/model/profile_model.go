package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID is the principal's identifier.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName      string    `gorm:"type:varchar(120);not null"`
	AccountKind   string    `gorm:"type:varchar(20);not null;default:'individual'"`
	PhoneNumber   *string   `gorm:"type:varchar(32)"`
	City          *string   `gorm:"type:varchar(100)"`
	ShopName      *string   `gorm:"type:varchar(120)"`
	Bio           *string   `gorm:"type:text"`
	IsVerifiedPro bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Credentials []CredentialModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel mirrors the 'credentials' table (email/password login).
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
