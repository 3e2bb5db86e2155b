package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
)

// devSecret is the signing fallback outside production so a fresh checkout
// runs without extra setup. Production refuses to start without a secret.
const devSecret = "dev-secret"

// jwtService is a concrete implementation of the TokenService interface using
// HS256-signed JWTs.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// tokenClaims is the on-wire claim set. The account ID travels as the subject.
type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService. An empty secret is a hard
// error in production and a logged fallback everywhere else.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := cfg.JWT.Secret
	if secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("jwt secret must be provided in production")
		}

		logger.Warn("JWT_SECRET not set, using insecure development fallback")
		secret = devSecret
	}

	return &jwtService{
		secret:   []byte(secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		ttl:      cfg.JWT.TTL,
	}, nil
}

// Issue creates a signed token for the account. Expiry is now+TTL.
func (s *jwtService) Issue(accountID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks signature, issuer, audience and expiry, and decodes the
// identity claims. Expiry failures map to ErrTokenExpired, everything else
// to ErrTokenInvalid.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	claims := new(tokenClaims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &service.TokenClaims{
		AccountID: accountID,
		Username:  claims.Username,
	}, nil
}
