//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stash-backend/internal/pkg/config"
	"stash-backend/internal/pkg/jwt"
	"stash-backend/internal/pkg/seed"
	"stash-backend/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) usecase.AuthUseCase {
	t.Helper()
	auth, err := usecase.NewAuthUseCase(
		jwt.NewService("test-secret", time.Hour),
		config.DemoConfig{Email: "demo@stash.app", Password: "scan-save-win"},
	)
	require.NoError(t, err)
	return auth
}

func TestLogin(t *testing.T) {
	auth := newAuth(t)

	t.Run("demo credentials issue a token that resolves back to the same user", func(t *testing.T) {
		result, err := auth.Login(context.Background(), "demo@stash.app", "scan-save-win")
		require.NoError(t, err)

		wantID := fmt.Sprintf("user_%d", seed.FromString("demo@stash.app"))
		assert.Equal(t, wantID, result.User.ID)
		assert.Equal(t, "demo@stash.app", result.User.Email)

		user, err := auth.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User, *user)
	})

	t.Run("email lookup is case and whitespace insensitive", func(t *testing.T) {
		result, err := auth.Login(context.Background(), "  Demo@Stash.App ", "scan-save-win")
		require.NoError(t, err)
		assert.Equal(t, "demo@stash.app", result.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "demo@stash.app", "wrong")
		assert.True(t, errors.Is(err, usecase.ErrInvalidCredentials))
	})

	t.Run("unknown email yields the same error as a bad password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "someone@else.com", "scan-save-win")
		assert.True(t, errors.Is(err, usecase.ErrInvalidCredentials))
	})
}

func TestValidateToken(t *testing.T) {
	auth := newAuth(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.ValidateToken("not-a-token")
		assert.True(t, errors.Is(err, usecase.ErrTokenValidation))
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("user_1", "demo@stash.app")
		require.NoError(t, err)

		_, err = auth.ValidateToken(token)
		assert.True(t, errors.Is(err, usecase.ErrTokenValidation))
	})
}
