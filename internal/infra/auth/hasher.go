// Package auth provides the credential primitives: password hashing, password
// strength policy and JWT issuing/verification.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"pantry/internal/domain/service"
	"pantry/internal/errors"
)

const saltLength = 16

// SHA256Hasher implements service.PasswordHasher with a per-account random
// salt appended to the password before digesting. Hash and salt are stored
// hex-encoded.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new salted SHA-256 password hasher.
func NewSHA256Hasher() service.PasswordHasher {
	return &SHA256Hasher{}
}

// Hash generates a fresh 16-byte random salt and returns the hex digest of
// password+salt together with the hex-encoded salt.
func (h *SHA256Hasher) Hash(password string) (service.CredentialHash, error) {
	saltBytes := make([]byte, saltLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return service.CredentialHash{}, errors.Wrap(err, "generate salt")
	}

	salt := hex.EncodeToString(saltBytes)

	return service.CredentialHash{
		Hash: digest(password, salt),
		Salt: salt,
	}, nil
}

// Verify recomputes the digest for the candidate password with the stored
// salt and compares it with the stored hash.
func (h *SHA256Hasher) Verify(password, hash, salt string) bool {
	return digest(password, salt) == hash
}

func digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))

	return hex.EncodeToString(sum[:])
}
