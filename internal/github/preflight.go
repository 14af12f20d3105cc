// Package github verifies the workflow token against the GitHub API before
// the runner mutates any git state.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RepoGetter is the slice of the GitHub API the preflight needs.
type RepoGetter interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// Client wraps the GitHub API for the token preflight check.
type Client struct {
	repos RepoGetter
}

// NewClient creates a Client authenticating with token against serverURL.
// Non-github.com hosts get enterprise API endpoints.
func NewClient(ctx context.Context, serverURL, token string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	host := serverURL
	if u, err := url.Parse(serverURL); err == nil && u.Host != "" {
		host = u.Host
	}
	if host != "github.com" {
		baseURL := fmt.Sprintf("https://%s/api/v3/", host)
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", host)
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create enterprise client for %s: %w", host, err)
		}
	}

	return &Client{repos: client.Repositories}, nil
}

// NewClientWithRepoGetter creates a Client over an arbitrary RepoGetter, for tests.
func NewClientWithRepoGetter(repos RepoGetter) *Client {
	return &Client{repos: repos}
}

// CheckRepoAccess verifies the token can read repository ("owner/repo").
// The external program needs at least read access to open pull requests, so
// failing here is cheaper than failing after git state was mutated.
func (c *Client) CheckRepoAccess(ctx context.Context, repository string) error {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok {
		return fmt.Errorf("repository %q is not in owner/repo form", repository)
	}

	if _, _, err := c.repos.Get(ctx, owner, repo); err != nil {
		return fmt.Errorf("token cannot access %s: %w", repository, err)
	}
	return nil
}
