package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/app"
	"github.com/songbird-data/fixturectl/internal/config"
	"github.com/songbird-data/fixturectl/internal/errors"
	"github.com/songbird-data/fixturectl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "fixturectl",
	Short: "Test-fixture data lifecycle CLI",
	Long: `fixturectl manages the generated test-fixture data for the test suite.

The fixture tree has one lifecycle with four operations:
  - generate: run the external generation script locally
  - archive:  package the fixture directories into one tar.gz
  - download: fetch the published archive and expand it in place
  - clean:    remove the generated tree

Each invocation performs exactly one operation; there is no scheduler
or automatic sequencing.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		// An explicit --config or a config file in the working directory
		// replaces the layout; otherwise whatever is already wired
		// (defaults, or a test double) stays.
		path := configPath
		if path == "" {
			if _, err := os.Stat(config.DefaultConfigFile); err != nil {
				return nil
			}
			path = config.DefaultConfigFile
		}

		layout, err := config.Load(path)
		if err != nil {
			return errors.ConfigError("failed to load configuration", err)
		}
		app.SetDefault(app.New(app.WithLayout(layout)))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)
