// Package invoker assembles and executes the external patch-to-PR conversion
// program. The runner's contract ends at this boundary: the program's exit
// code becomes the run's exit code.
package invoker

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
)

// DefaultProgram is the external conversion program.
const DefaultProgram = "pw-to-pr"

// Invocation describes one external program call. Positionals carries the six
// resolved input values in declaration order; the workspace path and the
// repository identifier follow them on the command line.
type Invocation struct {
	Program     string
	Positionals []string
	Workspace   string
	Repository  string

	// Env is extra environment for the program, appended to the inherited
	// environment. Secrets travel here, never on the command line.
	Env []string

	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the full argument vector, program excluded.
func (inv *Invocation) Args() []string {
	args := make([]string, 0, len(inv.Positionals)+2)
	args = append(args, inv.Positionals...)
	args = append(args, inv.Workspace, inv.Repository)
	return args
}

// Run executes the invocation and blocks until it exits. A non-zero exit
// comes back as an ExternalCommandError carrying the program's exit code;
// nothing is retried.
func Run(ctx context.Context, inv *Invocation) error {
	program := inv.Program
	if program == "" {
		program = DefaultProgram
	}

	args := inv.Args()
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = inv.Workspace
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return pw2prerrors.NewExternalCommandError(program, args, exitErr.ExitCode(), err)
	}
	return pw2prerrors.NewExternalCommandError(program, args, 1, err)
}
