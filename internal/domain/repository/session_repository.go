package repository

import (
	"context"
	"errors"

	"chatline/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session row matches the presented credential.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations on the session registry. A row in
// the registry is the server-side half of an issued credential: deleting it
// revokes the credential regardless of its cryptographic validity.
type SessionRepository interface {
	// Create persists a new session, issued on successful login.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the session matching the hash of a presented credential.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash revokes a single credential. Deleting a hash with no
	// matching row is not an error, which makes logout idempotent.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes sessions whose expiry has passed and returns the
	// number of rows deleted. Called periodically by the sweeper.
	DeleteExpired(ctx context.Context) (int64, error)
}
