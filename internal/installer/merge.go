package installer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/colorrs/colorrs/internal/pattern"
)

// Decision is the plan for one candidate file.
type Decision struct {
	Source string // path of the candidate file
	Name   string // file name, also its name in the destination
	// Conflict is the installed (or earlier installed in the same batch)
	// file that blocks this one. Empty means the file should be copied.
	Conflict string
}

// Skip reports whether the candidate must not be copied.
func (d Decision) Skip() bool { return d.Conflict != "" }

// Failure records a file whose copy failed.
type Failure struct {
	Name string
	Err  error
}

// Outcome is the categorized result of a merge.
type Outcome struct {
	Installed []string
	Skipped   []Decision
	Failed    []Failure
}

// Count returns the number of files actually installed.
func (o Outcome) Count() int { return len(o.Installed) }

// claims tracks the names and stems present in the destination. A
// candidate conflicts with a claimed file of the same name or the same stem.
type claims struct {
	byName map[string]bool
	byStem map[string]string // stem -> first file claiming it
}

func newClaims(existing []string) *claims {
	c := &claims{
		byName: make(map[string]bool, len(existing)),
		byStem: make(map[string]string, len(existing)),
	}
	for _, name := range existing {
		c.claim(name)
	}
	return c
}

func (c *claims) claim(name string) {
	c.byName[name] = true
	if _, ok := c.byStem[pattern.Stem(name)]; !ok {
		c.byStem[pattern.Stem(name)] = name
	}
}

// decide returns the decision for the candidate at src.
func (c *claims) decide(src string) Decision {
	name := filepath.Base(src)
	d := Decision{Source: src, Name: name}
	switch {
	case c.byName[name]:
		d.Conflict = name
	case c.byStem[pattern.Stem(name)] != "":
		d.Conflict = c.byStem[pattern.Stem(name)]
	}
	return d
}

// Merge copies the regular files directly inside assetDir into destination,
// skipping any whose stem is already installed. A failed copy is logged and
// recorded but does not stop the batch. Only an unreadable assetDir or
// destination is an error.
func Merge(fs FileSystem, assetDir, destination string) (Outcome, error) {
	candidates, err := fs.ListFiles(assetDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: listing %s: %w", ErrIO, assetDir, err)
	}

	installed, err := fs.ListFiles(destination)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: listing destination %s: %w", ErrIO, destination, err)
	}
	existing := make([]string, 0, len(installed))
	for _, p := range installed {
		existing = append(existing, filepath.Base(p))
	}

	// Only a successful copy claims its stem, so a failed file never blocks
	// a later one with the same stem.
	dest := newClaims(existing)
	var out Outcome
	for _, src := range candidates {
		d := dest.decide(src)
		if d.Skip() {
			slog.Debug("pattern already installed", "file", d.Name, "conflict", d.Conflict)
			out.Skipped = append(out.Skipped, d)
			continue
		}

		if err := fs.CopyFile(d.Source, filepath.Join(destination, d.Name)); err != nil {
			slog.Warn("installing pattern failed", "file", d.Name, "err", err)
			out.Failed = append(out.Failed, Failure{Name: d.Name, Err: err})
			continue
		}
		dest.claim(d.Name)
		out.Installed = append(out.Installed, d.Name)
	}

	return out, nil
}
