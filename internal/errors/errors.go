// Package errors provides sentinel errors and custom error types for the pw2pr runner.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrMissingSecret indicates that a required secret environment variable is unset or empty
	ErrMissingSecret = errors.New("missing secret")

	// ErrMissingInput indicates that a required action input was not provided
	ErrMissingInput = errors.New("required input not set")

	// ErrInvalidInput indicates that an action input has a value outside its allowed set
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadConfigFile indicates that the patchwork config file is absent or not valid JSON
	ErrBadConfigFile = errors.New("bad config file")
)

// MissingSecretError represents a required secret that is unset or empty
type MissingSecretError struct {
	Name string
}

func (e *MissingSecretError) Error() string {
	return fmt.Sprintf("required secret %s is not set", e.Name)
}

// Is returns true if the target error is ErrMissingSecret
func (e *MissingSecretError) Is(target error) bool {
	return target == ErrMissingSecret
}

// NewMissingSecretError creates a new MissingSecretError
func NewMissingSecretError(name string) *MissingSecretError {
	return &MissingSecretError{Name: name}
}

// MissingInputError represents a required action input that was not provided
type MissingInputError struct {
	Name string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("required input %s is not set", e.Name)
}

// Is returns true if the target error is ErrMissingInput
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError
func NewMissingInputError(name string) *MissingInputError {
	return &MissingInputError{Name: name}
}

// InvalidInputError represents an action input with a value outside its allowed set
type InvalidInputError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("input %s has invalid value %q (allowed: %v)", e.Name, e.Value, e.Allowed)
}

// Is returns true if the target error is ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(name, value string, allowed ...string) *InvalidInputError {
	return &InvalidInputError{Name: name, Value: value, Allowed: allowed}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExternalCommandError represents a failed external program invocation.
// ExitCode carries the program's exit status so the runner can propagate it.
type ExternalCommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Err      error
}

func (e *ExternalCommandError) Error() string {
	return fmt.Sprintf("command %s exited with code %d: %v", e.Command, e.ExitCode, e.Err)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// NewExternalCommandError creates a new ExternalCommandError
func NewExternalCommandError(command string, args []string, exitCode int, err error) *ExternalCommandError {
	return &ExternalCommandError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ExitCode maps err to the process exit status. External program failures keep
// their own exit code; every other failure is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *ExternalCommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}
