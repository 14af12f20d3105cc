package action

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
)

// IsURL reports whether source is a remote URL rather than a local path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// CheckConfigSource verifies a local config source exists and is valid JSON
// before the external program is invoked. URL sources are passed through
// untouched; the external program fetches them itself.
func CheckConfigSource(source string) error {
	if IsURL(source) {
		return nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("%w: unable to read %s: %v", pw2prerrors.ErrBadConfigFile, source, err)
	}

	var cfg map[string]json.RawMessage
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %s is not valid JSON: %v", pw2prerrors.ErrBadConfigFile, source, err)
	}
	return nil
}
