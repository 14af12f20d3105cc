package action

import (
	"fmt"
	"os"
	"strings"
)

func getenvTrimmed(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

// DefaultPatchworkServer is the Patchwork API base the external client talks to.
const DefaultPatchworkServer = "https://patchwork.kernel.org/api"

// PatchworkServer returns the Patchwork API base URL, honoring a PW_SERVER
// override for instances other than patchwork.kernel.org.
func PatchworkServer() string {
	if v := getenvTrimmed("PW_SERVER"); v != "" {
		return v
	}
	return DefaultPatchworkServer
}

// PatchworkProjectURL builds the project patch listing URL the external
// client polls for new series.
func PatchworkProjectURL(server, projectID string) string {
	return fmt.Sprintf("%s/patches/?project=%s&archived=0", server, projectID)
}
