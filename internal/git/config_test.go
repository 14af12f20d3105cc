package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pw2pr.dev/pw2pr/internal/git"
	"pw2pr.dev/pw2pr/testhelpers"
)

func TestSetUserIdentity(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	err := runner.SetUserIdentity(context.Background(), "alice", "alice@users.noreply.github.com")
	require.NoError(t, err)

	name, err := scene.Repo.GetConfig("user.name")
	require.NoError(t, err)
	require.Equal(t, "alice", name)

	email, err := scene.Repo.GetConfig("user.email")
	require.NoError(t, err)
	require.Equal(t, "alice@users.noreply.github.com", email)
}

func TestAddSafeDirectory(t *testing.T) {
	// Redirect the global config so the test does not touch ~/.gitconfig
	globalConfig := filepath.Join(t.TempDir(), "gitconfig")
	t.Setenv("GIT_CONFIG_GLOBAL", globalConfig)

	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	err := runner.AddSafeDirectory(context.Background(), scene.Dir)
	require.NoError(t, err)

	value, err := runner.Run(context.Background(), "config", "--global", "--get", "safe.directory")
	require.NoError(t, err)
	require.Equal(t, scene.Dir, value)
}

func TestWritePatchworkConfig(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	cfg := git.PatchworkConfig{
		Server:  "https://patchwork.kernel.org/api",
		Project: "https://patchwork.kernel.org/api/patches/?project=395&archived=0",
		Token:   "pwtoken-secret",
	}
	require.NoError(t, runner.WritePatchworkConfig(context.Background(), cfg))

	for key, want := range map[string]string{
		git.ConfigKeyServer:  cfg.Server,
		git.ConfigKeyProject: cfg.Project,
		git.ConfigKeyToken:   cfg.Token,
	} {
		got, err := runner.GetConfig(context.Background(), key)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWritePatchworkConfigOverwrites(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	first := git.PatchworkConfig{Server: "https://old/api", Project: "old", Token: "old-token"}
	require.NoError(t, runner.WritePatchworkConfig(context.Background(), first))

	second := git.PatchworkConfig{Server: "https://new/api", Project: "new", Token: "new-token"}
	require.NoError(t, runner.WritePatchworkConfig(context.Background(), second))

	got, err := runner.GetConfig(context.Background(), git.ConfigKeyServer)
	require.NoError(t, err)
	require.Equal(t, "https://new/api", got)
}

func TestRunReturnsGitCommandError(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir)

	_, err := runner.Run(context.Background(), "config", "--get", "no.such.key")
	require.Error(t, err)
}
