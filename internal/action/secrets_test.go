package action_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pw2pr.dev/pw2pr/internal/action"
	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
)

func setAllSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "ghtoken-secret")
	t.Setenv("EMAIL_TOKEN", "emailtoken-secret")
	t.Setenv("PATCHWORK_TOKEN", "pwtoken-secret")
}

func TestSecretsFromEnv(t *testing.T) {
	setAllSecrets(t)

	s, err := action.SecretsFromEnv()
	require.NoError(t, err)
	require.Equal(t, "ghtoken-secret", s.GitHubToken)
	require.Equal(t, "emailtoken-secret", s.EmailToken)
	require.Equal(t, "pwtoken-secret", s.PatchworkToken)
	require.Equal(t, []string{"ghtoken-secret", "emailtoken-secret", "pwtoken-secret"}, s.Values())
}

func TestSecretsFromEnvNamesTheMissingVariable(t *testing.T) {
	for _, missing := range action.RequiredSecrets {
		t.Run(missing, func(t *testing.T) {
			setAllSecrets(t)
			t.Setenv(missing, "")

			_, err := action.SecretsFromEnv()
			require.ErrorIs(t, err, pw2prerrors.ErrMissingSecret)

			var msErr *pw2prerrors.MissingSecretError
			require.True(t, errors.As(err, &msErr))
			require.Equal(t, missing, msErr.Name)
			require.Contains(t, err.Error(), missing)
		})
	}
}
