package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"pw2pr.dev/pw2pr/internal/cli"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	root := cli.NewRootCmd("1.2.3", "abc1234", "2026-08-30")

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	require.Contains(t, names, "run")
	require.Contains(t, names, "version")
}

func TestVersionCmd(t *testing.T) {
	root := cli.NewRootCmd("1.2.3", "abc1234", "2026-08-30")

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	require.Contains(t, out.String(), "1.2.3")
	require.Contains(t, out.String(), "abc1234")
}

func TestRunCmdFlags(t *testing.T) {
	root := cli.NewRootCmd("dev", "none", "unknown")

	runCmd, _, err := root.Find([]string{"run"})
	require.NoError(t, err)

	for _, name := range []string{
		"pw-key-str", "base-branch", "config", "patchwork-id",
		"email-message", "user", "program", "client-package", "pip",
		"skip-preflight", "verbose",
	} {
		require.NotNil(t, runCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
