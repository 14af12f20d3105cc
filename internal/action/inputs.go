package action

import (
	"os"
	"strings"

	pw2prerrors "pw2pr.dev/pw2pr/internal/errors"
)

// Input names as declared in action.yml.
const (
	InputKeyStr        = "pw_key_str"
	InputBaseBranch    = "base_branch"
	InputConfig        = "config"
	InputPatchworkID   = "patchwork_id"
	InputEmailMessage  = "email_message"
	InputUser          = "user"
	InputSkipPreflight = "skip_preflight"
)

// Inputs holds the resolved action inputs for one invocation. All values are
// immutable once resolved; the six positional fields are passed through to the
// external program in declaration order.
type Inputs struct {
	// KeyStr distinguishes the repo type: "kernel" or "user".
	KeyStr string

	// BaseBranch is the branch the pull request targets.
	BaseBranch string

	// Config is the configuration source, a local path or URL.
	Config string

	// PatchworkID is the numeric Patchwork project id. Required.
	PatchworkID string

	// EmailMessage is the email message source, a local path or URL.
	EmailMessage string

	// User is the numeric Patchwork user id.
	User string

	// SkipPreflight disables the GitHub token preflight check.
	SkipPreflight bool
}

// allowed values for pw_key_str
var allowedKeyStrs = []string{"kernel", "user"}

// InputsFromEnv resolves inputs from INPUT_* environment variables, applying
// the defaults declared in the action manifest for anything unset. Callers
// apply any flag overrides and then run Validate.
func InputsFromEnv(m *Manifest) *Inputs {
	in := &Inputs{
		KeyStr:       inputOrDefault(m, InputKeyStr),
		BaseBranch:   inputOrDefault(m, InputBaseBranch),
		Config:       inputOrDefault(m, InputConfig),
		PatchworkID:  inputOrDefault(m, InputPatchworkID),
		EmailMessage: inputOrDefault(m, InputEmailMessage),
		User:         inputOrDefault(m, InputUser),
	}
	in.SkipPreflight = isTruthy(inputOrDefault(m, InputSkipPreflight))
	return in
}

// Validate checks required inputs and the pw_key_str value set. It runs
// before any git mutation so configuration errors surface first.
func (in *Inputs) Validate() error {
	if in.PatchworkID == "" {
		return pw2prerrors.NewMissingInputError(InputPatchworkID)
	}
	for _, allowed := range allowedKeyStrs {
		if in.KeyStr == allowed {
			return nil
		}
	}
	return pw2prerrors.NewInvalidInputError(InputKeyStr, in.KeyStr, allowedKeyStrs...)
}

// Positionals returns the six resolved values in the order the external
// program expects them.
func (in *Inputs) Positionals() []string {
	return []string{
		in.KeyStr,
		in.BaseBranch,
		in.Config,
		in.PatchworkID,
		in.EmailMessage,
		in.User,
	}
}

// inputOrDefault reads INPUT_<NAME> (the GitHub Actions input convention)
// falling back to the manifest default.
func inputOrDefault(m *Manifest, name string) string {
	v := strings.TrimSpace(os.Getenv(envVarForInput(name)))
	if v != "" {
		return v
	}
	return m.Default(name)
}

// envVarForInput maps an input name to its environment variable, e.g.
// "pw_key_str" -> "INPUT_PW_KEY_STR".
func envVarForInput(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
