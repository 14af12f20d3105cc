// Package redact masks secret material in diagnostic output so tokens never
// reach CI logs.
package redact

import (
	"net/url"
	"regexp"
	"strings"
)

// Replacement is substituted for every masked value.
const Replacement = "***"

// userinfoRe matches inline basic-auth credentials in URLs.
var userinfoRe = regexp.MustCompile(`(https?://)[^/@\s]+@`)

// Redactor masks a fixed set of secret values plus URL userinfo credentials.
type Redactor struct {
	secrets []string
}

// New creates a Redactor masking the given secret values. Empty values are
// ignored so an unset optional secret cannot blank out all output.
func New(secrets ...string) *Redactor {
	r := &Redactor{}
	r.Add(secrets...)
	return r
}

// Add registers more secret values with the redactor.
func (r *Redactor) Add(secrets ...string) {
	for _, s := range secrets {
		if s != "" {
			r.secrets = append(r.secrets, s)
		}
	}
}

// Mask returns s with every registered secret and every URL credential
// replaced.
func (r *Redactor) Mask(s string) string {
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, Replacement)
	}
	return userinfoRe.ReplaceAllString(s, "${1}"+Replacement+"@")
}

// MaskURL strips userinfo credentials from a single URL, keeping the rest
// readable for diagnostics.
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return userinfoRe.ReplaceAllString(rawURL, "${1}"+Replacement+"@")
	}
	u.User = url.User(Replacement)
	return u.String()
}
