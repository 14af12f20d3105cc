package git

import (
	"context"
	"fmt"
	"net/url"
)

// tokenUser is the username GitHub expects for installation token auth.
const tokenUser = "x-access-token"

// CredentialURL builds the credentialed origin URL,
// https://x-access-token:<token>@<host>/<owner/repo>.
func CredentialURL(host, repository, token string) string {
	u := url.URL{
		Scheme: "https",
		User:   url.UserPassword(tokenUser, token),
		Host:   host,
		Path:   "/" + repository,
	}
	return u.String()
}

// SetOriginURL rewrites the origin remote URL so pushes authenticate as the
// token principal. The URL embeds the token; callers must never log it.
func (r *CommandRunner) SetOriginURL(ctx context.Context, rawURL string) error {
	if _, err := r.Run(ctx, "remote", "set-url", "origin", rawURL); err != nil {
		return fmt.Errorf("failed to set origin url: %w", err)
	}
	return nil
}

// GetOriginURL returns the current origin remote URL.
func (r *CommandRunner) GetOriginURL(ctx context.Context) (string, error) {
	return r.Run(ctx, "remote", "get-url", "origin")
}
