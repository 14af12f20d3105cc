package action

import (
	"fmt"

	"gopkg.in/yaml.v3"

	pw2pr "pw2pr.dev/pw2pr"
)

// Manifest is the action manifest (action.yml). The runner embeds it so input
// defaults are declared in exactly one place.
type Manifest struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Inputs      map[string]ManifestInput `yaml:"inputs"`
}

// ManifestInput is one input declaration from the manifest.
type ManifestInput struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

// LoadManifest parses the embedded action manifest.
func LoadManifest() (*Manifest, error) {
	return ParseManifest(pw2pr.ManifestYAML)
}

// ParseManifest parses an action manifest from raw YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse action manifest: %w", err)
	}
	if len(m.Inputs) == 0 {
		return nil, fmt.Errorf("action manifest declares no inputs")
	}
	return &m, nil
}

// Default returns the declared default for name, or "".
func (m *Manifest) Default(name string) string {
	return m.Inputs[name].Default
}

// IsRequired reports whether name is declared required.
func (m *Manifest) IsRequired(name string) bool {
	return m.Inputs[name].Required
}
