package installer

import (
	"fmt"
	"os"

	"github.com/colorrs/colorrs/internal/config"
)

// AssetDir is the directory selected for installation inside a repository.
type AssetDir struct {
	Kind config.AssetKind
	Path string
}

// Locate returns the first recognized asset directory directly under root,
// checking kinds in config.AssetKinds order. When both exist only the first
// is returned.
func Locate(root string) (AssetDir, error) {
	for _, kind := range config.AssetKinds() {
		path := kind.DirIn(root)
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			return AssetDir{Kind: kind, Path: path}, nil
		}
	}
	return AssetDir{}, fmt.Errorf("%w in %s", ErrInvalidSubdir, root)
}
