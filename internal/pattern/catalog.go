package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List returns the installed patterns in dir, sorted by file name.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pattern directory: %w", err)
	}

	var entries []Entry
	for _, de := range des {
		path := filepath.Join(dir, de.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		name := de.Name()
		stem := Stem(name)
		entries = append(entries, Entry{
			Name: stem,
			Ext:  strings.TrimPrefix(name[len(stem):], "."),
			Path: path,
		})
	}
	return entries, nil
}

// Remove deletes every file in dir whose stem is name and returns the
// removed paths.
func Remove(dir, name string) ([]string, error) {
	entries, err := List(dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, e := range entries {
		if e.Name != name {
			continue
		}
		if err := os.Remove(e.Path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("deleting %s: %w", e.Path, err)
		}
		removed = append(removed, e.Path)
	}

	if len(removed) == 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
	}
	return removed, nil
}
