package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the directory name used under the user config directory.
	AppName = "colorrs"

	// DirEnvVar overrides the pattern directory when no --dir flag is given.
	DirEnvVar = "COLORRS_DIR"

	// DefaultSettingsFile is the optional settings file inside the app config dir.
	DefaultSettingsFile = "settings.toml"
)

// Settings is the optional settings.toml file.
type Settings struct {
	// PatternDir replaces the default pattern directory. Relative paths are
	// taken relative to the settings file.
	PatternDir string `toml:"pattern_dir,omitempty"`
}

// LoadSettings reads and parses a settings file.
// If the file does not exist it returns empty settings (no error).
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if s.PatternDir != "" && !filepath.IsAbs(s.PatternDir) {
		s.PatternDir = filepath.Join(filepath.Dir(path), s.PatternDir)
	}

	return s, nil
}

// AppConfigDir returns <user config dir>/colorrs.
func AppConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Resolver picks the pattern directory. Its fields are the inputs in priority
// order; the zero value of each means "not set".
type Resolver struct {
	Flag         string // --dir
	Env          string // value of COLORRS_DIR
	SettingsPath string // settings.toml location; empty skips the file
	Default      string // fallback, normally AppConfigDir()
}

// PatternDir applies flag > env > settings file > default.
func (r Resolver) PatternDir() (string, error) {
	if r.Flag != "" {
		return r.Flag, nil
	}
	if r.Env != "" {
		return r.Env, nil
	}
	if r.SettingsPath != "" {
		s, err := LoadSettings(r.SettingsPath)
		if err != nil {
			return "", err
		}
		if s.PatternDir != "" {
			return s.PatternDir, nil
		}
	}
	if r.Default == "" {
		return "", fmt.Errorf("no pattern directory configured: pass --dir or set %s", DirEnvVar)
	}
	return r.Default, nil
}

// ResolvePatternDir builds a Resolver from the process environment and the
// user config directory, then resolves it.
func ResolvePatternDir(flag string) (string, error) {
	r := Resolver{Flag: flag, Env: os.Getenv(DirEnvVar)}
	if appDir, err := AppConfigDir(); err == nil {
		r.SettingsPath = filepath.Join(appDir, DefaultSettingsFile)
		r.Default = appDir
	}
	return r.PatternDir()
}
