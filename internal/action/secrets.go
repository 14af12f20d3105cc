package action

import (
	"os"

	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
)

// Names of the required secret environment variables.
const (
	SecretGitHubToken    = "GITHUB_TOKEN"
	SecretEmailToken     = "EMAIL_TOKEN"
	SecretPatchworkToken = "PATCHWORK_TOKEN"
)

// RequiredSecrets lists the secrets in the order they are checked.
var RequiredSecrets = []string{
	SecretGitHubToken,
	SecretEmailToken,
	SecretPatchworkToken,
}

// Secrets holds the secret values for one invocation. Never log these.
type Secrets struct {
	GitHubToken    string
	EmailToken     string
	PatchworkToken string
}

// SecretsFromEnv reads the three required secrets, failing on the first one
// that is unset or empty so the operator knows exactly which is missing.
func SecretsFromEnv() (*Secrets, error) {
	for _, name := range RequiredSecrets {
		if os.Getenv(name) == "" {
			return nil, pw2prerrors.NewMissingSecretError(name)
		}
	}
	return &Secrets{
		GitHubToken:    os.Getenv(SecretGitHubToken),
		EmailToken:     os.Getenv(SecretEmailToken),
		PatchworkToken: os.Getenv(SecretPatchworkToken),
	}, nil
}

// Values returns every secret value, for redaction registration.
func (s *Secrets) Values() []string {
	return []string{s.GitHubToken, s.EmailToken, s.PatchworkToken}
}
