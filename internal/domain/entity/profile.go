// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountKind distinguishes private sellers from registered businesses.
type AccountKind string

const (
	// AccountKindIndividual is a private person selling occasionally.
	AccountKindIndividual AccountKind = "individual"
	// AccountKindProfessional is a shop or business account.
	AccountKindProfessional AccountKind = "professional"
)

// IsValid checks if the AccountKind is a known value.
func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindIndividual, AccountKindProfessional:
		return true
	default:
		return false
	}
}

// Principal is the authenticated identity performing an operation.
// A nil *Principal means the caller is anonymous.
type Principal struct {
	ID uuid.UUID
}

// Profile is the public record of a marketplace member.
// It is created at sign-up, edited by its owner and never deleted.
type Profile struct {
	ID            uuid.UUID   `json:"id"`                     // Same identifier as the principal.
	FullName      string      `json:"full_name"`              // Display name.
	AccountKind   AccountKind `json:"account_kind"`           // individual or professional.
	PhoneNumber   *string     `json:"phone_number,omitempty"` // Optional contact phone, used for the WhatsApp link.
	City          *string     `json:"city,omitempty"`
	ShopName      *string     `json:"shop_name,omitempty"` // Store name shown instead of FullName when set.
	Bio           *string     `json:"bio,omitempty"`
	IsVerifiedPro bool        `json:"is_verified_pro"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// DisplayName returns the shop name when present, otherwise the full name.
func (p *Profile) DisplayName() string {
	if p.ShopName != nil && *p.ShopName != "" {
		return *p.ShopName
	}

	return p.FullName
}

// PublicProfile is the subset of a profile visible to other members.
// The phone number is intentionally absent; it is only exposed as a contact link.
type PublicProfile struct {
	ID            uuid.UUID   `json:"id"`
	DisplayName   string      `json:"display_name"`
	FullName      string      `json:"full_name"`
	AccountKind   AccountKind `json:"account_kind"`
	City          *string     `json:"city,omitempty"`
	Bio           *string     `json:"bio,omitempty"`
	IsVerifiedPro bool        `json:"is_verified_pro"`
}

// Public projects the profile onto its public fields.
func (p *Profile) Public() *PublicProfile {
	return &PublicProfile{
		ID:            p.ID,
		DisplayName:   p.DisplayName(),
		FullName:      p.FullName,
		AccountKind:   p.AccountKind,
		City:          p.City,
		Bio:           p.Bio,
		IsVerifiedPro: p.IsVerifiedPro,
	}
}
