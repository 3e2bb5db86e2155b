package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
)

func testConfig(secret, env string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.JWT = config.JWTConfig{
		Secret:   secret,
		Issuer:   "recipes-app",
		Audience: "recipes-app-users",
		TTL:      ttl,
	}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewJWTService_ProductionRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testConfig("", "production", time.Hour), discardLogger())
	require.Error(t, err)
}

func TestNewJWTService_DevFallback(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig("", "local", time.Hour), discardLogger())
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig("test-secret", "local", time.Hour), discardLogger())
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.Issue(accountID, "chef_anna")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "chef_anna", claims.Username)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig("test-secret", "local", -time.Minute), discardLogger())
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "chef_anna")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_Verify_Tampered(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig("test-secret", "local", time.Hour), discardLogger())
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "chef_anna")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewJWTService(testConfig("secret-a", "local", time.Hour), discardLogger())
	require.NoError(t, err)

	verifier, err := NewJWTService(testConfig("secret-b", "local", time.Hour), discardLogger())
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "chef_anna")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig("test-secret", "local", time.Hour), discardLogger())
	require.NoError(t, err)

	_, err = svc.Verify("not-a-jwt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
