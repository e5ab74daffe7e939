package config

import (
	"path/filepath"
)

// AssetKind names a recognized asset subdirectory inside a pattern repository.
type AssetKind string

const (
	Patterns     AssetKind = "patterns"
	Colorscripts AssetKind = "colorscripts"
)

// AssetKinds returns the recognized asset kinds in lookup priority order.
// Only the first one present in a repository is ever installed.
func AssetKinds() []AssetKind {
	return []AssetKind{Patterns, Colorscripts}
}

// DirIn returns the path of this kind's subdirectory under root.
func (k AssetKind) DirIn(root string) string {
	return filepath.Join(root, string(k))
}
