package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
)

func TestDenylistPolicy_ValidateStrength(t *testing.T) {
	t.Parallel()

	policy := NewDenylistPolicy()

	tests := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{name: "common password", password: "password", wantWeak: true},
		{name: "common password with suffix", password: "password123", wantWeak: true},
		{name: "denylist is case-insensitive", password: "LetMeIn", wantWeak: true},
		{name: "numeric sequence", password: "hunter123", wantWeak: true},
		{name: "repeated characters", password: "xaaaax9T", wantWeak: true},
		{name: "exactly four repeats", password: "wXbbbb7K", wantWeak: true},
		{name: "three repeats allowed", password: "wXbbb7Kp", wantWeak: false},
		{name: "repeats broken up", password: "wXbbKbb7", wantWeak: false},
		{name: "keyboard walk substring", password: "myqwePass", wantWeak: true},
		{name: "uppercase sequence", password: "hunterABC", wantWeak: true},
		{name: "strong password", password: "Xk9#mQ2vL8", wantWeak: false},
		{name: "acceptable password", password: "Secure8Pass", wantWeak: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := policy.ValidateStrength(tt.password)
			if tt.wantWeak {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))

				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.NotEmpty(t, appErr.Details())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
