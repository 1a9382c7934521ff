package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults mirroring the test-suite tree this tool manages.
const (
	DefaultRootDir      = "tests/data_for_tests"
	DefaultGeneratedDir = "generated"
	DefaultArchiveName  = "generated_test_data.tar.gz"
	DefaultSourceURL    = "https://osf.io/xq6hf/download"
	DefaultGenerator    = "python ./tests/scripts/generate_data_for_tests.py"

	// DefaultConfigFile is looked for in the working directory when
	// no --config flag is given.
	DefaultConfigFile = ".fixturectl.toml"
)

// Layout describes the fixture tree, the archive artifact, and the remote
// source. All paths are relative to the working directory the commands
// run in, matching how the archive entries are rooted.
type Layout struct {
	// RootDir is the test-data root; the archive file lives directly under it.
	RootDir string `toml:"root"`

	// GeneratedDir is the generated-data root under RootDir. The clean
	// operation removes this tree recursively.
	GeneratedDir string `toml:"generated"`

	// ConfigsDir, PrepDir and ResultsDir are the fixture directories under
	// GeneratedDir. Together they are the packaging input of the archive
	// operation; because they all live under GeneratedDir they are also
	// exactly what clean removes.
	ConfigsDir string `toml:"configs"`
	PrepDir    string `toml:"prep"`
	ResultsDir string `toml:"results"`

	// ArchiveName is the archive filename under RootDir.
	ArchiveName string `toml:"archive"`

	// SourceURL is the fixed remote location of the published archive.
	SourceURL string `toml:"source_url"`

	// Generator is the command line that populates the fixture tree.
	Generator string `toml:"generator"`
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() *Layout {
	return &Layout{
		RootDir:      DefaultRootDir,
		GeneratedDir: DefaultGeneratedDir,
		ConfigsDir:   "configs",
		PrepDir:      "prep",
		ResultsDir:   "results",
		ArchiveName:  DefaultArchiveName,
		SourceURL:    DefaultSourceURL,
		Generator:    DefaultGenerator,
	}
}

// GeneratedRoot returns the path of the generated-data tree.
func (l *Layout) GeneratedRoot() string {
	return filepath.Join(l.RootDir, l.GeneratedDir)
}

// FixtureRoots returns the ordered fixture directories, relative to the
// working directory. Archive entry names are derived from these paths, so
// expanding the archive in the same working directory reconstructs the tree.
func (l *Layout) FixtureRoots() []string {
	root := l.GeneratedRoot()
	return []string{
		filepath.Join(root, l.ConfigsDir),
		filepath.Join(root, l.PrepDir),
		filepath.Join(root, l.ResultsDir),
	}
}

// ArchivePath returns the path of the archive artifact.
func (l *Layout) ArchivePath() string {
	return filepath.Join(l.RootDir, l.ArchiveName)
}

// Validate checks that the layout is complete and internally consistent.
func (l *Layout) Validate() error {
	if l.RootDir == "" {
		return fmt.Errorf("root must not be empty")
	}
	if l.GeneratedDir == "" {
		return fmt.Errorf("generated must not be empty")
	}
	for name, dir := range map[string]string{
		"configs": l.ConfigsDir,
		"prep":    l.PrepDir,
		"results": l.ResultsDir,
	} {
		if dir == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if filepath.IsAbs(dir) || filepath.Dir(dir) != "." {
			return fmt.Errorf("%s must be a bare directory name, got %q", name, dir)
		}
	}
	if l.ArchiveName == "" {
		return fmt.Errorf("archive must not be empty")
	}
	if l.SourceURL == "" {
		return fmt.Errorf("source_url must not be empty")
	}
	u, err := url.Parse(l.SourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("source_url is not a valid URL: %q", l.SourceURL)
	}
	if l.Generator == "" {
		return fmt.Errorf("generator must not be empty")
	}
	return nil
}

// Load reads a layout from a TOML file. Fields absent from the file keep
// their defaults. Unknown keys are rejected so typos do not silently
// fall back to defaults.
func Load(path string) (*Layout, error) {
	layout := DefaultLayout()

	meta, err := toml.DecodeFile(path, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return layout, nil
}

// Discover loads the layout from the given path if non-empty, otherwise
// from DefaultConfigFile in the working directory if present, otherwise
// returns the built-in defaults.
func Discover(path string) (*Layout, error) {
	if path != "" {
		return Load(path)
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return Load(DefaultConfigFile)
	}

	return DefaultLayout(), nil
}
