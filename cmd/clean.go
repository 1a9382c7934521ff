package cmd

import (
	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/fixtures"
)

var cleanArchive bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated fixture tree",
	Long: `clean recursively deletes the generated-data tree. It succeeds when
the tree is already absent, and does not ask for confirmation.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanArchive, "archive", false, "Also remove the local archive file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	l := layout()

	if err := fixtures.Clean(l.GeneratedRoot()); err != nil {
		return err
	}

	if cleanArchive {
		if err := fixtures.RemoveArchive(l.ArchivePath()); err != nil {
			return err
		}
		logSuccess("Removed %s and %s", l.GeneratedRoot(), l.ArchivePath())
		return nil
	}

	logSuccess("Removed %s", l.GeneratedRoot())
	return nil
}
