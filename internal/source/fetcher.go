package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/go-git/go-git/v5"
)

// Repository clones a normalized URL into a workspace owned by the caller.
type Repository interface {
	Fetch(ctx context.Context, url string) (*Workspace, error)
}

var _ Repository = (*Fetcher)(nil)

// Fetcher clones repositories into fresh temporary directories.
type Fetcher struct {
	tempRoot string
	progress io.Writer
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch creates a workspace and performs one clone of url into it.
// On error nothing is left on disk. On success the caller must Close the
// workspace.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Workspace, error) {
	dir, err := os.MkdirTemp(f.tempRoot, "colorrs-clone-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTempDir, err)
	}

	slog.Debug("cloning repository", "url", url, "dir", dir)

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Progress: f.progress,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("%w: %s: %w", ErrCloneFailed, url, err)
	}

	return &Workspace{Dir: dir, URL: url}, nil
}

// Workspace is a cloned repository on disk. It exists until Close.
type Workspace struct {
	Dir string
	URL string

	once sync.Once
	err  error
}

// Close removes the workspace directory. Safe to call multiple times.
func (w *Workspace) Close() error {
	w.once.Do(func() {
		w.err = os.RemoveAll(w.Dir)
		if w.err != nil {
			slog.Warn("removing clone workspace failed", "dir", w.Dir, "err", w.err)
		}
	})
	return w.err
}
