package pattern

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// --- helpers ---

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// --- Stem ---

func TestStem(t *testing.T) {
	t.Parallel()
	cases := []struct{ input, want string }{
		{"foo.toml", "foo"},
		{"foo.sh", "foo"},
		{"foo", "foo"},
		{"archive.tar.gz", "archive.tar"},
		{".bashrc", ".bashrc"},
	}
	for _, tc := range cases {
		if got := Stem(tc.input); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// --- Decode ---

func TestDecode_Valid(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"waves.toml": "pattern = \"{red}~~~{reset}\"\n\n[colors]\nred = \"31\"\n",
	})
	p, err := Decode(filepath.Join(dir, "waves.toml"))
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if p.Pattern != "{red}~~~{reset}" {
		t.Errorf("Pattern = %q", p.Pattern)
	}
	if p.Colors["red"] != "31" {
		t.Errorf("Colors[red] = %q, want %q", p.Colors["red"], "31")
	}
}

func TestDecode_NoColors(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{"plain.toml": "pattern = \"plain\"\n"})
	p, err := Decode(filepath.Join(dir, "plain.toml"))
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if p.Colors == nil {
		t.Error("Colors should be initialised")
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"broken.toml":  "[[[[invalid",
		"nopat.toml":   "[colors]\nred = \"31\"\n",
		"wrongty.toml": "pattern = 3\n",
	})
	for _, name := range []string{"broken.toml", "nopat.toml", "wrongty.toml"} {
		_, err := Decode(filepath.Join(dir, name))
		if !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("Decode(%s) error = %v, want ErrInvalidPattern", name, err)
		}
	}
}

// --- List / Find ---

func TestList(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"waves.toml": "pattern = \"~\"\n",
		"bars":       "#!/bin/sh\n",
		"dots.sh":    "#!/bin/sh\n",
	})
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.String())
	}
	want := []string{"bars", "dots (sh)", "waves (toml)"}
	if len(got) != len(want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !entries[2].IsTOML() || entries[1].IsTOML() {
		t.Error("IsTOML mismatch")
	}
}

func TestList_MissingDir(t *testing.T) {
	t.Parallel()
	if _, err := List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

// --- Remove ---

func TestRemove_AllExtensions(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"waves.toml": "pattern = \"~\"\n",
		"waves.sh":   "#!/bin/sh\n",
		"other.toml": "pattern = \"o\"\n",
	})

	removed, err := Remove(dir, "waves")
	if err != nil {
		t.Fatalf("Remove: unexpected error: %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("removed %v, want 2 files", removed)
	}
	entries, _ := List(dir)
	if len(entries) != 1 || entries[0].Name != "other" {
		t.Errorf("remaining = %v, want [other]", entries)
	}
}

func TestRemove_NotFound(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{"a.toml": "pattern = \"a\"\n"})
	if _, err := Remove(dir, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(ghost) error = %v, want ErrNotFound", err)
	}
}
