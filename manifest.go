// Package pw2pr carries the embedded action manifest so input defaults are
// declared once, in action.yml.
package pw2pr

import _ "embed"

// ManifestYAML is the raw action.yml manifest.
//
//go:embed action.yml
var ManifestYAML []byte
