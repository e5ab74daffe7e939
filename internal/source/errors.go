package source

import "errors"

// Sentinel errors for reference normalization and fetching.
// Callers should use errors.Is to check.
var (
	// ErrInvalidURL indicates a reference that is neither an http(s) URL nor owner/name.
	ErrInvalidURL = errors.New("source: invalid repository reference")
	// ErrTempDir indicates the clone workspace could not be created.
	ErrTempDir = errors.New("source: cannot create workspace")
	// ErrCloneFailed indicates the repository could not be cloned.
	ErrCloneFailed = errors.New("source: clone failed")
)
