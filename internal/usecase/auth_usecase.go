// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"pantry/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Username string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued access token plus the public identity of the
// authenticated account. Sign-up and login share this shape.
type AuthOutput struct {
	AccessToken string
	User        *entity.Identity
}

// AuthUsecase defines the interface for account registration and
// authentication. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// SignUp validates the input, enforces the password policy, creates the
	// account and returns a fresh access token.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login verifies the credentials and returns a fresh access token. The
	// returned error never distinguishes an unknown username from a wrong
	// password.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ResolveIdentity loads the public identity for an account ID, typically
	// the subject of a verified access token.
	ResolveIdentity(ctx context.Context, accountID uuid.UUID) (*entity.Identity, error)
}
