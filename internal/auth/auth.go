// Package auth supplies the HTTP client used for GitHub API lookups.
// Clones never use it; they are always anonymous.
package auth

import (
	"net/http"
	"os"
	"time"
)

// githubTokenEnvVars lists the environment variables checked for a GitHub token,
// in priority order.
var githubTokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
}

// Token returns the GitHub token from the environment, if any.
// It checks GITHUB_TOKEN first, then GH_TOKEN.
func Token() (string, bool) {
	for _, env := range githubTokenEnvVars {
		if v := os.Getenv(env); v != "" {
			return v, true
		}
	}
	return "", false
}

// NewAPIClient returns a client for GitHub API calls with the given timeout.
// A token found in the environment is sent on every request to raise the
// search rate limit; without one the client is anonymous.
func NewAPIClient(timeout time.Duration) *http.Client {
	base := http.DefaultTransport
	token, _ := Token()
	return &http.Client{
		Timeout:   timeout,
		Transport: &apiTransport{token: token, base: base},
	}
}

// apiTransport is an http.RoundTripper that sets the GitHub API headers.
type apiTransport struct {
	token string
	base  http.RoundTripper
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid mutating the original
	r := req.Clone(req.Context())
	if t.token != "" {
		r.Header.Set("Authorization", "Bearer "+t.token)
	}
	r.Header.Set("Accept", "application/vnd.github+json")
	return t.base.RoundTrip(r)
}
