// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strings"

	domainerrors "pantry/internal/domain/errors"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 50
	passwordMinLength = 6
	passwordMaxLength = 128
)

// Usernames are restricted to a URL-safe alphabet.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateUsername checks presence, length and alphabet. Errors name the
// offending field so clients can highlight it. Whitespace-only values count
// as missing.
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return domainerrors.NewValidationError("username", "Username is required")
	}
	if len(username) < usernameMinLength {
		return domainerrors.NewValidationError("username", "Username must be at least 3 characters long")
	}
	if len(username) > usernameMaxLength {
		return domainerrors.NewValidationError("username", "Username must be at most 50 characters long")
	}
	if !usernamePattern.MatchString(username) {
		return domainerrors.NewValidationError("username", "Username can only contain letters, numbers, underscores and hyphens")
	}

	return nil
}

// validatePassword checks presence and length. Whitespace-only values count
// as missing. Strength checks live in the password policy and run only at
// sign-up.
func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return domainerrors.NewValidationError("password", "Password is required")
	}
	if len(password) < passwordMinLength {
		return domainerrors.NewValidationError("password", "Password must be at least 6 characters long")
	}
	if len(password) > passwordMaxLength {
		return domainerrors.NewValidationError("password", "Password must be at most 128 characters long")
	}

	return nil
}
