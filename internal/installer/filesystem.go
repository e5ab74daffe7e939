package installer

// FileSystem abstracts the filesystem operations the merger needs.
type FileSystem interface {
	// ListFiles returns the paths of regular files directly inside dir,
	// sorted by name. Subdirectories are not descended into.
	ListFiles(dir string) ([]string, error)

	// CopyFile copies src to dst, creating or truncating dst.
	CopyFile(src, dst string) error
}
