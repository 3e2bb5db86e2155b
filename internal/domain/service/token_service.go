package service

import (
	"github.com/google/uuid"
)

// TokenClaims is the decoded identity claim set carried by an access token.
type TokenClaims struct {
	AccountID uuid.UUID // The token subject.
	Username  string
}

// TokenService issues and verifies signed, self-contained bearer tokens.
// Verification failures are typed: callers can distinguish an expired token
// (client should re-authenticate) from any other invalid token.
type TokenService interface {
	// Issue creates a signed token embedding the account identity plus the
	// configured issuer, audience and expiry claims.
	Issue(accountID uuid.UUID, username string) (string, error)

	// Verify checks the token signature and registered claims and returns
	// the decoded identity claims. It fails with ErrTokenExpired when the
	// expiry claim is in the past, and ErrTokenInvalid for every other
	// verification failure.
	Verify(tokenString string) (*TokenClaims, error)
}
