// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a stored user identity with its credentials. The password hash
// and salt never leave the persistence boundary except through this entity,
// and are never serialized into responses.
type Account struct {
	ID           uuid.UUID // Assigned at creation, immutable.
	Username     string    // Unique login identifier, immutable after creation.
	PasswordHash string    // Hex-encoded digest of password+salt.
	Salt         string    // Random hex string, paired 1:1 with PasswordHash.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the projection of an Account attached to a request after the
// route guard accepts it. It deliberately excludes credential material.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Identity returns the credential-free projection of the account.
func (a *Account) Identity() *Identity {
	return &Identity{
		ID:       a.ID,
		Username: a.Username,
	}
}
