// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"chatline/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the issued credential after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   *entity.Account
}

// AccountUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the presented credential. Revoking an unknown or
	// already-revoked credential succeeds.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a presented credential into an identity. Every
	// failure mode reports the same unauthenticated error.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// CleanupExpiredSessions drops expired registry rows and returns how
	// many were removed. Invoked periodically by the sweeper worker.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
