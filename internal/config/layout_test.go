package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	if l.RootDir != DefaultRootDir {
		t.Errorf("RootDir = %q, want %q", l.RootDir, DefaultRootDir)
	}
	if l.GeneratedRoot() != filepath.Join(DefaultRootDir, DefaultGeneratedDir) {
		t.Errorf("GeneratedRoot() = %q, want %q", l.GeneratedRoot(), filepath.Join(DefaultRootDir, DefaultGeneratedDir))
	}
	if l.ArchivePath() != filepath.Join(DefaultRootDir, DefaultArchiveName) {
		t.Errorf("ArchivePath() = %q, want %q", l.ArchivePath(), filepath.Join(DefaultRootDir, DefaultArchiveName))
	}

	if err := l.Validate(); err != nil {
		t.Errorf("default layout should validate, got: %v", err)
	}
}

func TestFixtureRoots(t *testing.T) {
	l := DefaultLayout()
	roots := l.FixtureRoots()

	want := []string{
		filepath.Join(DefaultRootDir, DefaultGeneratedDir, "configs"),
		filepath.Join(DefaultRootDir, DefaultGeneratedDir, "prep"),
		filepath.Join(DefaultRootDir, DefaultGeneratedDir, "results"),
	}

	if len(roots) != len(want) {
		t.Fatalf("FixtureRoots() returned %d roots, want %d", len(roots), len(want))
	}
	for i := range want {
		if roots[i] != want[i] {
			t.Errorf("FixtureRoots()[%d] = %q, want %q", i, roots[i], want[i])
		}
	}

	// Every fixture root must live under the generated root, otherwise
	// archive and clean would operate on diverging sets.
	for _, root := range roots {
		if !strings.HasPrefix(root, l.GeneratedRoot()+string(filepath.Separator)) {
			t.Errorf("fixture root %q is outside generated root %q", root, l.GeneratedRoot())
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"empty root", func(l *Layout) { l.RootDir = "" }},
		{"empty generated", func(l *Layout) { l.GeneratedDir = "" }},
		{"empty configs", func(l *Layout) { l.ConfigsDir = "" }},
		{"empty prep", func(l *Layout) { l.PrepDir = "" }},
		{"empty results", func(l *Layout) { l.ResultsDir = "" }},
		{"absolute fixture dir", func(l *Layout) { l.ConfigsDir = "/etc" }},
		{"fixture dir with separator", func(l *Layout) { l.PrepDir = "a/b" }},
		{"empty archive", func(l *Layout) { l.ArchiveName = "" }},
		{"empty url", func(l *Layout) { l.SourceURL = "" }},
		{"relative url", func(l *Layout) { l.SourceURL = "not-a-url" }},
		{"empty generator", func(l *Layout) { l.Generator = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(l)
			if err := l.Validate(); err == nil {
				t.Error("Validate() should fail, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fixturectl.toml")

	content := `
root = "testdata"
archive = "fixtures.tar.gz"
source_url = "https://example.com/fixtures.tar.gz"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if l.RootDir != "testdata" {
		t.Errorf("RootDir = %q, want %q", l.RootDir, "testdata")
	}
	if l.ArchiveName != "fixtures.tar.gz" {
		t.Errorf("ArchiveName = %q, want %q", l.ArchiveName, "fixtures.tar.gz")
	}
	if l.SourceURL != "https://example.com/fixtures.tar.gz" {
		t.Errorf("SourceURL = %q, want %q", l.SourceURL, "https://example.com/fixtures.tar.gz")
	}

	// Fields absent from the file keep their defaults.
	if l.GeneratedDir != DefaultGeneratedDir {
		t.Errorf("GeneratedDir = %q, want default %q", l.GeneratedDir, DefaultGeneratedDir)
	}
	if l.Generator != DefaultGenerator {
		t.Errorf("Generator = %q, want default %q", l.Generator, DefaultGenerator)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("/nonexistent/fixturectl.toml")
	if err == nil {
		t.Error("Expected error for nonexistent config, got nil")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fixturectl.toml")

	if err := os.WriteFile(path, []byte("not valid toml ==="), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid TOML, got nil")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fixturectl.toml")

	if err := os.WriteFile(path, []byte(`sourc_url = "https://example.com"`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for unknown key, got nil")
	}
	if err != nil && !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("error should mention unknown key, got: %v", err)
	}
}

func TestDiscover(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	// No config file anywhere: defaults.
	l, err := Discover("")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if l.RootDir != DefaultRootDir {
		t.Errorf("RootDir = %q, want default %q", l.RootDir, DefaultRootDir)
	}

	// Default config file in the working directory is picked up.
	content := `root = "elsewhere"` + "\n"
	if err := os.WriteFile(DefaultConfigFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	l, err = Discover("")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if l.RootDir != "elsewhere" {
		t.Errorf("RootDir = %q, want %q", l.RootDir, "elsewhere")
	}
}
