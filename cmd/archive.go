package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/archive"
)

var archiveOutput string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Package the fixture directories into the archive file",
	Long: `archive packs the configured fixture directories into a single
gzip-compressed tar file, overwriting any existing archive at the
destination. Every fixture directory must already exist; a missing one
fails the operation before anything is written.`,
	Args: cobra.NoArgs,
	RunE: runArchive,
}

func init() {
	archiveCmd.Flags().StringVarP(&archiveOutput, "output", "o", "", "Write the archive to this path instead of the configured one")
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	l := layout()

	dest := archiveOutput
	if dest == "" {
		dest = l.ArchivePath()
	}

	logInfo("Packing %d fixture directories into %s...", len(l.FixtureRoots()), dest)

	if err := archive.Pack(dest, ".", l.FixtureRoots()); err != nil {
		return err
	}

	if info, err := os.Stat(dest); err == nil {
		logSuccess("Wrote archive %s (%d bytes)", dest, info.Size())
	} else {
		logSuccess("Wrote archive %s", dest)
	}
	return nil
}
