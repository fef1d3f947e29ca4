//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success: token is stored for the user", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.devices.Register(ctx, f.userID, "  token-a  ", "IOS"))
		assert.Equal(t, []string{"token-a"}, f.store.DeviceTokens(f.userID))
	})

	t.Run("success: re-registering moves the token to the new user", func(t *testing.T) {
		f := newFixture(t)
		other := uuid.New()

		require.NoError(t, f.devices.Register(ctx, f.userID, "shared-device", "android"))
		require.NoError(t, f.devices.Register(ctx, other, "shared-device", "android"))

		assert.Empty(t, f.store.DeviceTokens(f.userID))
		assert.Equal(t, []string{"shared-device"}, f.store.DeviceTokens(other))
	})

	testCases := []struct {
		name  string
		token string
	}{
		{name: "error: empty token", token: ""},
		{name: "error: whitespace token", token: "   "},
		{name: "error: oversized token", token: strings.Repeat("a", 4097)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.devices.Register(ctx, f.userID, tc.token, "web")
			assert.True(t, errs.Is(err, commands.ErrInvalidDeviceToken))
			assert.Zero(t, f.store.Commits)
		})
	}
}

func TestDeviceCommands_Unregister(t *testing.T) {
	ctx := context.Background()

	t.Run("success: token removed", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.devices.Register(ctx, f.userID, "token-a", "ios"))

		require.NoError(t, f.devices.Unregister(ctx, f.userID, "token-a"))
		assert.Empty(t, f.store.DeviceTokens(f.userID))
	})

	t.Run("success: unknown token is a no-op", func(t *testing.T) {
		f := newFixture(t)
		assert.NoError(t, f.devices.Unregister(ctx, f.userID, "never-registered"))
	})

	t.Run("success: another user's token is untouched", func(t *testing.T) {
		f := newFixture(t)
		other := uuid.New()
		require.NoError(t, f.devices.Register(ctx, other, "token-b", "ios"))

		require.NoError(t, f.devices.Unregister(ctx, f.userID, "token-b"))
		assert.Equal(t, []string{"token-b"}, f.store.DeviceTokens(other))
	})

	t.Run("error: empty token", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, errs.Is(f.devices.Unregister(ctx, f.userID, " "), commands.ErrInvalidDeviceToken))
	})
}
