package installer

import "errors"

// Sentinel errors for locating and merging pattern files.
// Callers should use errors.Is to check.
var (
	// ErrInvalidSubdir indicates a repository without a patterns or colorscripts directory.
	ErrInvalidSubdir = errors.New("installer: no patterns or colorscripts directory")
	// ErrIO indicates a source or destination directory could not be read.
	ErrIO = errors.New("installer: i/o error")
)
