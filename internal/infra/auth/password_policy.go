package auth

import (
	"strings"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
)

// Denylisted passwords are rejected outright regardless of other checks.
var weakPasswords = []string{
	"123456",
	"password",
	"qwerty",
	"admin",
	"123456789",
	"12345678",
	"1234567",
	"password123",
	"admin123",
	"letmein",
}

// Keyboard walks and trivial sequences rejected as substrings.
var weakSequences = []string{
	"123",
	"abc",
	"qwe",
	"asd",
	"zxc",
	"789",
	"def",
	"ghi",
	"jkl",
	"mno",
}

const maxRepeatedRun = 3

// hasRepeatedRun reports whether the password contains more than
// maxRepeatedRun identical characters in a row.
func hasRepeatedRun(password string) bool {
	var prev rune
	run := 0

	for _, r := range password {
		if run > 0 && r == prev {
			run++
			if run > maxRepeatedRun {
				return true
			}

			continue
		}

		prev = r
		run = 1
	}

	return false
}

// DenylistPolicy implements service.PasswordPolicy with a static denylist,
// a repeated-character check and a weak-substring check. All comparisons are
// case-insensitive.
type DenylistPolicy struct{}

// NewDenylistPolicy creates the default password strength policy.
func NewDenylistPolicy() service.PasswordPolicy {
	return &DenylistPolicy{}
}

// ValidateStrength returns ErrPasswordTooWeak with a reason detail when the
// password fails any check, nil otherwise.
func (p *DenylistPolicy) ValidateStrength(password string) error {
	lowered := strings.ToLower(password)

	for _, weak := range weakPasswords {
		if lowered == weak {
			return domainerrors.ErrPasswordTooWeak.WithDetails("Password is too common")
		}
	}

	if hasRepeatedRun(password) {
		return domainerrors.ErrPasswordTooWeak.WithDetails("Password contains too many repeated characters")
	}

	for _, sequence := range weakSequences {
		if strings.Contains(lowered, sequence) {
			return domainerrors.ErrPasswordTooWeak.WithDetails("Password contains a predictable sequence")
		}
	}

	return nil
}
