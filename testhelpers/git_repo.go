// Package testhelpers builds throwaway git repositories and action
// environments for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes a file and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, message string) error {
	path := filepath.Join(r.Dir, "test.txt")
	if err := os.WriteFile(path, []byte(textValue+"\n"), 0644); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// AddRemote adds a named remote pointing at url.
func (r *GitRepo) AddRemote(name, url string) error {
	return r.RunGitCommand("remote", "add", name, url)
}

// GetConfig reads a local config value.
func (r *GitRepo) GetConfig(key string) (string, error) {
	return r.RunGitCommandAndGetOutput("config", "--get", key)
}
