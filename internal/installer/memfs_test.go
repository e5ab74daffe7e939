package installer

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// memFS is a minimal in-memory FileSystem for merge tests.
type memFS struct {
	dirs     map[string]map[string][]byte // dir -> file name -> content
	failCopy map[string]bool              // file names whose copy fails
	copies   []string                     // destination paths written, in order
}

func newMemFS() *memFS {
	return &memFS{
		dirs:     make(map[string]map[string][]byte),
		failCopy: make(map[string]bool),
	}
}

// add creates dir (if needed) and the given file names in it.
func (m *memFS) add(dir string, names ...string) *memFS {
	if m.dirs[dir] == nil {
		m.dirs[dir] = make(map[string][]byte)
	}
	for _, n := range names {
		m.dirs[dir][n] = []byte("content of " + n)
	}
	return m
}

func (m *memFS) names(dir string) []string {
	var out []string
	for n := range m.dirs[dir] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (m *memFS) ListFiles(dir string) ([]string, error) {
	if _, ok := m.dirs[dir]; !ok {
		return nil, os.ErrNotExist
	}
	var paths []string
	for _, n := range m.names(dir) {
		paths = append(paths, filepath.Join(dir, n))
	}
	return paths, nil
}

func (m *memFS) CopyFile(src, dst string) error {
	if m.failCopy[filepath.Base(src)] {
		return errors.New("disk full")
	}
	content, ok := m.dirs[filepath.Dir(src)][filepath.Base(src)]
	if !ok {
		return os.ErrNotExist
	}
	dstDir := filepath.Dir(dst)
	if m.dirs[dstDir] == nil {
		return os.ErrNotExist
	}
	m.dirs[dstDir][filepath.Base(dst)] = content
	m.copies = append(m.copies, dst)
	return nil
}
