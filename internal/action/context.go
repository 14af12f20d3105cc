// Package action resolves the GitHub Actions execution context, the action
// inputs declared in action.yml, and the required secrets.
package action

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Context captures the CI run metadata the runner consumes.
type Context struct {
	// Actor is the user or app that triggered the workflow.
	Actor string

	// Repository is the full repository name (e.g., "bluez/bluez").
	Repository string

	// Workspace is the checked-out repository directory.
	Workspace string

	// ServerURL is the GitHub server URL (e.g., "https://github.com").
	ServerURL string
}

// DefaultServerURL is used when GITHUB_SERVER_URL is not set.
const DefaultServerURL = "https://github.com"

// ContextFromEnv builds a Context from the GITHUB_* environment variables
// that the hosting CI environment provides.
func ContextFromEnv() (*Context, error) {
	ctx := &Context{
		Actor:      strings.TrimSpace(os.Getenv("GITHUB_ACTOR")),
		Repository: strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY")),
		Workspace:  strings.TrimSpace(os.Getenv("GITHUB_WORKSPACE")),
		ServerURL:  strings.TrimSpace(os.Getenv("GITHUB_SERVER_URL")),
	}
	if ctx.ServerURL == "" {
		ctx.ServerURL = DefaultServerURL
	}

	if ctx.Actor == "" {
		return nil, fmt.Errorf("GITHUB_ACTOR is not set")
	}
	if ctx.Repository == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY is not set")
	}
	if !strings.Contains(ctx.Repository, "/") {
		return nil, fmt.Errorf("GITHUB_REPOSITORY %q is not in owner/repo form", ctx.Repository)
	}
	if ctx.Workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("GITHUB_WORKSPACE is not set and working directory is unavailable: %w", err)
		}
		ctx.Workspace = wd
	}

	return ctx, nil
}

// Owner returns the repository owner.
func (c *Context) Owner() string {
	owner, _, _ := strings.Cut(c.Repository, "/")
	return owner
}

// Repo returns the repository name without the owner.
func (c *Context) Repo() string {
	_, repo, _ := strings.Cut(c.Repository, "/")
	return repo
}

// Host returns the bare host of the server URL (e.g., "github.com").
func (c *Context) Host() string {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" {
		return strings.TrimPrefix(strings.TrimPrefix(c.ServerURL, "https://"), "http://")
	}
	return u.Host
}

// NoreplyEmail synthesizes the actor's noreply address, e.g.
// "alice@users.noreply.github.com".
func (c *Context) NoreplyEmail() string {
	return fmt.Sprintf("%s@users.noreply.%s", c.Actor, c.Host())
}
