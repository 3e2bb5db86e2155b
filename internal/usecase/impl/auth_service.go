package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
	"pantry/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	policy      service.PasswordPolicy
	tokens      service.TokenService
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Policy      service.PasswordPolicy
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		policy:      params.Policy,
		tokens:      params.Tokens,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account registration process. Internal
// failures (hashing, persistence, token signing) are masked behind generic
// validation errors so storage details never reach the client.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("username", input.Username))

	if err := validateUsername(input.Username); err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.String("reason", "username validation"))

		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.String("reason", "password validation"))

		return nil, err
	}
	if err := srv.policy.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.String("reason", "password policy"))

		return nil, err
	}

	// Early duplicate check for a friendly error. The unique constraint on
	// username still catches concurrent sign-ups.
	_, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.String("reason", "username taken"))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "sign-up failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Error("Failed to check username availability", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("database", "Failed to create user")
	}

	credential, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, domainerrors.NewValidationError("database", "Failed to create user")
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: credential.Hash,
		Salt:         credential.Salt,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Sign-up rejected", slog.String("username", input.Username), slog.String("reason", "username taken"))

			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "sign-up failed")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("database", "Failed to create user")
	}

	output, err := srv.buildAuthOutput(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("accountID", account.ID))

	return output, nil
}

// Login orchestrates the login process. An unknown username and a wrong
// password produce the same error so responses never reveal whether an
// account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	if strings.TrimSpace(input.Username) == "" {
		return nil, domainerrors.NewValidationError("username", "Username is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.NewValidationError("password", "Password is required")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown username"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load account for login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("database", "Failed to load user")
	}

	if !srv.hasher.Verify(input.Password, account.PasswordHash, account.Salt) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.buildAuthOutput(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return output, nil
}

// ResolveIdentity loads the public identity for a verified token subject.
func (srv *authService) ResolveIdentity(ctx context.Context, accountID uuid.UUID) (*entity.Identity, error) {
	if accountID == uuid.Nil {
		return nil, domainerrors.NewValidationError("accountId", "User ID is required")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "resolve identity failed")
		}

		srv.log(ctx).Error("Failed to load account", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("database", "Failed to load user")
	}

	return account.Identity(), nil
}

func (srv *authService) buildAuthOutput(ctx context.Context, account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.Issue(account.ID, account.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, domainerrors.NewValidationError("jwt", "Failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		User:        account.Identity(),
	}, nil
}
