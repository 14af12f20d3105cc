package action_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pw2pr.dev/pw2pr/internal/action"
)

func TestLoadManifest(t *testing.T) {
	m, err := action.LoadManifest()
	require.NoError(t, err)

	// Defaults declared in action.yml
	require.Equal(t, "kernel", m.Default(action.InputKeyStr))
	require.Equal(t, "workflow", m.Default(action.InputBaseBranch))
	require.Equal(t, "/config.json", m.Default(action.InputConfig))
	require.Equal(t, "/default-email-message.txt", m.Default(action.InputEmailMessage))
	require.Equal(t, "104215", m.Default(action.InputUser))

	require.True(t, m.IsRequired(action.InputPatchworkID))
	require.Empty(t, m.Default(action.InputPatchworkID))
}

func TestParseManifest(t *testing.T) {
	t.Run("rejects manifests without inputs", func(t *testing.T) {
		_, err := action.ParseManifest([]byte("name: empty\n"))
		require.Error(t, err)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		_, err := action.ParseManifest([]byte("inputs: [unterminated"))
		require.Error(t, err)
	})
}
