// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"teka/internal/domain/entity"
)

// DefaultPhonePrefix is prepended to sign-up phone numbers when no prefix is given.
const DefaultPhonePrefix = "+243"

// AccountUsecase defines sign-up, sign-in and bearer token resolution.
type AccountUsecase interface {
	// SignUp creates the credential and the profile in one transaction and signs the new member in.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn checks an email/password pair and issues an access token.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// Authenticate resolves an access token to the principal it was issued for.
	Authenticate(ctx context.Context, accessToken string) (*entity.Principal, error)
}

// --- Input DTOs ---

// SignUpInput defines the data required to open an account.
type SignUpInput struct {
	FullName    string             `json:"full_name" validate:"required,min=2,max=120"`
	Email       string             `json:"email" validate:"required,email,max=255"`
	Password    string             `json:"password" validate:"required,min=6,max=72"`
	AccountKind entity.AccountKind `json:"account_kind" validate:"omitempty,oneof=individual professional"`
	PhonePrefix string             `json:"phone_prefix,omitempty" validate:"omitempty,startswith=+,min=2,max=5"`
	PhoneNumber string             `json:"phone_number,omitempty" validate:"omitempty,numeric,min=6,max=15"`
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned by successful sign-up and sign-in.
type AuthOutput struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"` // Seconds.
	Profile     *entity.Profile `json:"profile"`
}
