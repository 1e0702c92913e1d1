package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in issued credentials.
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer credentials. The session registry decides whether a
// credential is still honored; this service only covers the cryptography.
type TokenService interface {
	// Generate creates a signed credential for the account and returns it
	// together with its embedded expiry.
	Generate(accountID uuid.UUID, username, email string) (token string, expiresAt time.Time, err error)

	// Validate checks the signature and expiry of a credential and returns its claims.
	Validate(token string) (*Claims, error)

	// HashToken returns the hash under which a credential is stored in the
	// session registry. The raw token never touches the database.
	HashToken(token string) string
}
