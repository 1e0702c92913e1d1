package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one issued bearer credential. A row existing in the
// registry means the credential was validly issued and has not been revoked;
// deleting the row revokes the credential before its embedded expiry.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	AccountID uuid.UUID // The account the credential was issued to.
	TokenHash string    // SHA-256 hash of the raw credential; the raw token is never stored.
	ExpiresAt time.Time // Mirrors the credential's embedded expiry, used by the sweeper.
	CreatedAt time.Time
}

// Identity is the result of a successful authentication: the claims resolved
// from a presented credential, attached to the request or connection.
type Identity struct {
	AccountID uuid.UUID
	Username  string
	Email     string
}
