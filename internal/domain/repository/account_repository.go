// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup key.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// Accounts are created once at sign-up and then only read; there is no update
// or delete operation in this core.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account. The storage layer enforces username
	// uniqueness; a constraint violation surfaces as ErrUserAlreadyExists,
	// covering the race between the pre-check and the insert.
	Create(ctx context.Context, account *entity.Account) error
}
