// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a
// single entity.
package service

// CredentialHash is the hash+salt pair produced at sign-up time and persisted
// as part of the account. The pair is generated together and never rotated
// independently.
type CredentialHash struct {
	Hash string // Hex-encoded digest of password+salt.
	Salt string // Random hex string, unique per account.
}

// PasswordHasher derives salted one-way hashes from plaintext passwords and
// verifies candidates against a stored pair. It abstracts the digest
// algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a fresh random salt and returns the salted digest of
	// the password together with that salt.
	Hash(password string) (CredentialHash, error)

	// Verify recomputes the digest for the candidate password with the
	// stored salt and compares it against the stored hash.
	Verify(password, hash, salt string) bool
}
