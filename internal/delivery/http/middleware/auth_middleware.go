package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "pantry/internal/delivery/context"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"
)

const bearerScheme = "Bearer"

// AuthMiddleware guards routes behind a verified access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the bearer token and resolves the account identity.
// The header must be exactly "Bearer <token>"; the scheme is case-sensitive.
// A token whose subject no longer exists is rejected with a not-found error,
// distinct from a malformed or expired token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "authorization header missing")
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != bearerScheme {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "malformed authorization header")
		}

		claims, err := m.tokenSvc.Verify(parts[1])
		if err != nil {
			return errors.Wrap(err, "token verification failed")
		}

		identity, err := m.authUC.ResolveIdentity(c.Request().Context(), claims.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve token subject")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
