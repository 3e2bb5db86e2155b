package service

// PasswordPolicy rejects passwords that are trivially guessable. The policy
// runs only at sign-up: a previously accepted password must keep
// authenticating even if the policy tightens later.
type PasswordPolicy interface {
	// ValidateStrength returns a typed error when the password matches the
	// weak-password denylist, contains a long repeated-character run, or
	// contains a known weak substring. Nil means the password is acceptable.
	ValidateStrength(password string) error
}
