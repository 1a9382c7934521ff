// Package config provides the layout configuration for fixturectl.
//
// # Layout
//
// Layout describes the fixed tree the tool manages:
//
//	tests/data_for_tests/                 RootDir
//	├── generated/                        GeneratedRoot (removed by clean)
//	│   ├── configs/                      fixture roots (archive input)
//	│   ├── prep/
//	│   └── results/
//	└── generated_test_data.tar.gz        ArchivePath
//
// The archive and clean operations both derive their paths from the same
// Layout accessors, so the packaged set and the deleted set cannot diverge.
//
// # Configuration File
//
// Defaults are built in; a TOML file (.fixturectl.toml in the working
// directory, or the --config flag) can override any field:
//
//	root = "tests/data_for_tests"
//	generated = "generated"
//	configs = "configs"
//	prep = "prep"
//	results = "results"
//	archive = "generated_test_data.tar.gz"
//	source_url = "https://osf.io/xq6hf/download"
//	generator = "python ./tests/scripts/generate_data_for_tests.py"
//
// Loading validates the result and rejects unknown keys.
package config
