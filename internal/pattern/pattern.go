package pattern

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLExt marks templated patterns; any other file is run as a script.
const TOMLExt = ".toml"

var (
	// ErrNotFound indicates no installed pattern has the requested name.
	ErrNotFound = errors.New("pattern: not found")
	// ErrInvalidPattern indicates a TOML pattern that does not decode.
	ErrInvalidPattern = errors.New("pattern: invalid TOML pattern")
)

// Pattern is the content of a TOML pattern file. Pattern holds the text with
// {name} placeholders, Colors maps each name to an SGR parameter string.
type Pattern struct {
	Colors  map[string]string `toml:"colors"`
	Pattern string            `toml:"pattern"`
}

// Decode reads and parses a TOML pattern file.
func Decode(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern: %w", err)
	}

	p := &Pattern{}
	md, err := toml.Decode(string(data), p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, filepath.Base(path), err)
	}
	if !md.IsDefined("pattern") {
		return nil, fmt.Errorf("%w: %s: missing \"pattern\" key", ErrInvalidPattern, filepath.Base(path))
	}
	if p.Colors == nil {
		p.Colors = make(map[string]string)
	}

	return p, nil
}

// Stem returns name without its final extension. Dotfiles like ".bashrc"
// have no extension and are their own stem. The stem is a pattern's identity:
// two files with the same stem are the same pattern.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// Entry is one installed pattern file.
type Entry struct {
	Name string // stem
	Ext  string // extension without the dot, empty for scripts without one
	Path string
}

// IsTOML reports whether the entry is a templated pattern.
func (e Entry) IsTOML() bool { return "."+e.Ext == TOMLExt }

// String renders "name (ext)", or just the name when there is no extension.
func (e Entry) String() string {
	if e.Ext == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Ext)
}
