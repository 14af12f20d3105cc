package testhelpers

import (
	"testing"
)

// Scene is a test scene: a temporary directory holding a real git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene. Cleanup is automatic via t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Failed to set up scene: %v", err)
		}
	}

	return scene
}

// SetActionEnv populates the GITHUB_* context variables and the three
// required secrets for the scene's workspace. Individual tests override or
// clear what they need with t.Setenv.
func (s *Scene) SetActionEnv(t *testing.T) {
	t.Helper()

	t.Setenv("GITHUB_ACTOR", "tester")
	t.Setenv("GITHUB_REPOSITORY", "bluez/bluez")
	t.Setenv("GITHUB_WORKSPACE", s.Dir)
	t.Setenv("GITHUB_SERVER_URL", "https://github.com")
	t.Setenv("GITHUB_TOKEN", "ghtoken-secret")
	t.Setenv("EMAIL_TOKEN", "emailtoken-secret")
	t.Setenv("PATCHWORK_TOKEN", "pwtoken-secret")
}
