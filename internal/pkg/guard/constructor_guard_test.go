package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbeddedInCommand shows the guard used the way commands use it.
func TestConstructorGuardEmbeddedInCommand(t *testing.T) {
	var errCommandNotConstructed = errors.New("PublishLoadCommand must be created via NewPublishLoadCommand")

	type publishLoadCommand struct {
		loadName string
		guard    guard.ConstructorGuard
	}

	newCommand := func(name string) (publishLoadCommand, error) {
		if name == "" {
			return publishLoadCommand{}, errors.New("load name is required")
		}
		return publishLoadCommand{loadName: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newCommand("L-20260101-0a1b2c3d")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, "L-20260101-0a1b2c3d", cmd.loadName)
	})

	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		var cmd publishLoadCommand

		err := cmd.guard.Validate(errCommandNotConstructed)

		require.ErrorIs(t, err, errCommandNotConstructed)
	})
}
