// Package installer ensures the Patchwork CLI client is present before the
// external program runs.
package installer

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// DefaultPackage is the pip package providing the Patchwork command-line client.
const DefaultPackage = "pwclient"

// installTimeout bounds the pip invocation; package index outages otherwise
// hang the whole run.
const installTimeout = 10 * time.Minute

// DefaultPip is the pip executable used when none is specified.
const DefaultPip = "pip3"

// Installer installs pip packages. The zero value is not usable; use New.
type Installer struct {
	pip    string
	runCmd func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New creates an Installer driving the given pip executable.
func New(pip string) *Installer {
	if pip == "" {
		pip = DefaultPip
	}
	return &Installer{
		pip:    pip,
		runCmd: runCommand,
	}
}

// NewWithRunner creates an Installer with a custom command runner, for tests.
func NewWithRunner(pip string, run func(ctx context.Context, name string, args ...string) ([]byte, error)) *Installer {
	return &Installer{pip: pip, runCmd: run}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// EnsureInstalled installs pkg. pip treats an already-satisfied requirement as
// a no-op, so the call is idempotent. Failure is fatal for the run; the
// external program depends on the client being present.
func (i *Installer) EnsureInstalled(ctx context.Context, pkg string) error {
	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	out, err := i.runCmd(ctx, i.pip, "install", pkg)
	if err != nil {
		return fmt.Errorf("failed to install %s: %w\n%s", pkg, err, out)
	}
	return nil
}
