package source

import "io"

// Option configures Fetcher.
type Option func(*Fetcher)

// WithTempRoot sets the parent directory for clone workspaces.
// Default is "" (os.TempDir()).
func WithTempRoot(dir string) Option {
	return func(f *Fetcher) {
		f.tempRoot = dir
	}
}

// WithProgress streams the remote's clone progress to w.
func WithProgress(w io.Writer) Option {
	return func(f *Fetcher) {
		f.progress = w
	}
}
