package invoker_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
	"pw2pr.dev/pw2pr/internal/invoker"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestArgsOrder(t *testing.T) {
	inv := &invoker.Invocation{
		Positionals: []string{"user", "main", "https://example.com/cfg.json", "42", "/tmp/msg.txt", "77"},
		Workspace:   "/workspace",
		Repository:  "bluez/bluez",
	}

	require.Equal(t, []string{
		"user", "main", "https://example.com/cfg.json", "42", "/tmp/msg.txt", "77",
		"/workspace", "bluez/bluez",
	}, inv.Args())
}

func TestRunPassesArgumentsThrough(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	program := writeScript(t, dir, "fake-pw-to-pr",
		fmt.Sprintf(`printf '%%s\n' "$@" > %q`, argsFile))

	inv := &invoker.Invocation{
		Program:     program,
		Positionals: []string{"user", "main", "https://example.com/cfg.json", "42", "/tmp/msg.txt", "77"},
		Workspace:   dir,
		Repository:  "bluez/bluez",
	}
	require.NoError(t, invoker.Run(context.Background(), inv))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t,
		"user\nmain\nhttps://example.com/cfg.json\n42\n/tmp/msg.txt\n77\n"+dir+"\nbluez/bluez\n",
		string(data))
}

func TestRunPropagatesExitCode(t *testing.T) {
	dir := t.TempDir()
	program := writeScript(t, dir, "fails", "exit 42")

	inv := &invoker.Invocation{
		Program:   program,
		Workspace: dir,
	}
	err := invoker.Run(context.Background(), inv)
	require.Error(t, err)

	var cmdErr *pw2prerrors.ExternalCommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, 42, cmdErr.ExitCode)
	require.Equal(t, 42, pw2prerrors.ExitCode(err))
}

func TestRunMissingProgram(t *testing.T) {
	inv := &invoker.Invocation{
		Program:   filepath.Join(t.TempDir(), "does-not-exist"),
		Workspace: t.TempDir(),
	}
	err := invoker.Run(context.Background(), inv)
	require.Error(t, err)
	require.Equal(t, 1, pw2prerrors.ExitCode(err))
}

func TestRunForwardsOutput(t *testing.T) {
	dir := t.TempDir()
	program := writeScript(t, dir, "noisy", `echo "converter output"`)

	var stdout bytes.Buffer
	inv := &invoker.Invocation{
		Program:   program,
		Workspace: dir,
		Stdout:    &stdout,
	}
	require.NoError(t, invoker.Run(context.Background(), inv))
	require.Contains(t, stdout.String(), "converter output")
}

func TestRunPassesExtraEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "env.txt")
	program := writeScript(t, dir, "env-check",
		fmt.Sprintf(`printf '%%s' "$PW_CHECK" > %q`, envFile))

	inv := &invoker.Invocation{
		Program:   program,
		Workspace: dir,
		Env:       []string{"PW_CHECK=present"},
	}
	require.NoError(t, invoker.Run(context.Background(), inv))

	data, err := os.ReadFile(envFile)
	require.NoError(t, err)
	require.Equal(t, "present", string(data))
}
