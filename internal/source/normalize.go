package source

import (
	"fmt"
	"strings"
)

const githubBase = "https://www.github.com"

// Normalize turns a user-supplied repository reference into a clonable URL.
//
// http:// and https:// URLs are returned unchanged. Anything else must be an
// owner/name shorthand, split at the first slash, and is expanded to a GitHub
// URL. The name keeps any further slashes verbatim.
func Normalize(reference string) (string, error) {
	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		return reference, nil
	}

	author, name, found := strings.Cut(reference, "/")
	if !found {
		return "", fmt.Errorf("%w: %q is not an http(s) address and has no delimiting slash", ErrInvalidURL, reference)
	}
	if author == "" || name == "" {
		return "", fmt.Errorf("%w: %q looks like owner/name but the owner or repository name is empty", ErrInvalidURL, reference)
	}

	return fmt.Sprintf("%s/%s/%s", githubBase, author, name), nil
}
