// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the system: one registered person.
// Email and username are unique across all accounts.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // Login identifier; unique.
	Username     string    // Public handle shown to chat peers; unique.
	Name         string    // Display name.
	PasswordHash string    // Bcrypt hash of the password. Never serialized to clients.
	ProfileImage string    // Relative retrieval path of the profile image, empty when unset.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicAccount is the subset of Account that may be echoed back to clients.
type PublicAccount struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image,omitempty"`
}

// Public strips the account down to the fields safe to return to a client.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		ProfileImage: a.ProfileImage,
	}
}
