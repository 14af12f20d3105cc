package git

import (
	"context"
	"fmt"
)

// Patchwork integration config keys consumed by the external client.
const (
	ConfigKeyServer  = "pw.server"
	ConfigKeyProject = "pw.project"
	ConfigKeyToken   = "pw.token"
)

// SetUserIdentity sets the commit author identity for the repository.
func (r *CommandRunner) SetUserIdentity(ctx context.Context, name, email string) error {
	if _, err := r.Run(ctx, "config", "user.name", name); err != nil {
		return fmt.Errorf("failed to set user.name: %w", err)
	}
	if _, err := r.Run(ctx, "config", "user.email", email); err != nil {
		return fmt.Errorf("failed to set user.email: %w", err)
	}
	return nil
}

// AddSafeDirectory marks dir as trusted so git operates on a workspace owned
// by a different uid, which is how action containers see the checkout.
func (r *CommandRunner) AddSafeDirectory(ctx context.Context, dir string) error {
	if _, err := r.Run(ctx, "config", "--global", "--add", "safe.directory", dir); err != nil {
		return fmt.Errorf("failed to add safe.directory: %w", err)
	}
	return nil
}

// PatchworkConfig holds the three pw.* values the external client reads from
// git config.
type PatchworkConfig struct {
	Server  string
	Project string
	Token   string
}

// WritePatchworkConfig writes the pw.server, pw.project and pw.token keys.
func (r *CommandRunner) WritePatchworkConfig(ctx context.Context, cfg PatchworkConfig) error {
	pairs := []struct {
		key   string
		value string
	}{
		{ConfigKeyServer, cfg.Server},
		{ConfigKeyProject, cfg.Project},
		{ConfigKeyToken, cfg.Token},
	}
	for _, p := range pairs {
		if _, err := r.Run(ctx, "config", p.key, p.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", p.key, err)
		}
	}
	return nil
}

// GetConfig reads a single config value from the repository.
func (r *CommandRunner) GetConfig(ctx context.Context, key string) (string, error) {
	value, err := r.Run(ctx, "config", "--get", key)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}
