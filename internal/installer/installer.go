package installer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/colorrs/colorrs/internal/source"
)

// Installer installs pattern files into one destination directory.
type Installer struct {
	source      source.Repository
	fs          FileSystem
	destination string
}

// New creates an Installer. destination must already exist.
func New(src source.Repository, fs FileSystem, destination string) *Installer {
	return &Installer{
		source:      src,
		fs:          fs,
		destination: destination,
	}
}

// Destination returns the directory patterns are installed into.
func (in *Installer) Destination() string { return in.destination }

// InstallFromRepository normalizes reference, clones it, locates its asset
// directory and merges it into the destination. The clone is removed before
// returning, whatever the result.
func (in *Installer) InstallFromRepository(ctx context.Context, reference string) (Outcome, error) {
	url, err := source.Normalize(reference)
	if err != nil {
		return Outcome{}, err
	}

	if err := in.checkDestination(); err != nil {
		return Outcome{}, err
	}

	ws, err := in.source.Fetch(ctx, url)
	if err != nil {
		return Outcome{}, err
	}
	defer func() { _ = ws.Close() }()

	asset, err := Locate(ws.Dir)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", url, err)
	}
	slog.Debug("located asset directory", "url", url, "kind", asset.Kind)

	return Merge(in.fs, asset.Path, in.destination)
}

// InstallFromDirectory merges a local directory. If dir holds a recognized
// asset subdirectory that one is used, otherwise dir itself is merged.
func (in *Installer) InstallFromDirectory(dir string) (Outcome, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !info.IsDir() {
		return Outcome{}, fmt.Errorf("%w: %s is not a directory", ErrIO, dir)
	}

	if err := in.checkDestination(); err != nil {
		return Outcome{}, err
	}

	assetPath := dir
	asset, err := Locate(dir)
	switch {
	case err == nil:
		assetPath = asset.Path
	case !errors.Is(err, ErrInvalidSubdir):
		return Outcome{}, err
	}

	return Merge(in.fs, assetPath, in.destination)
}

func (in *Installer) checkDestination() error {
	if _, err := in.fs.ListFiles(in.destination); err != nil {
		return fmt.Errorf("%w: pattern directory %s: %w", ErrIO, in.destination, err)
	}
	return nil
}
