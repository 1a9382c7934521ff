package cmd

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/archive"
	"github.com/songbird-data/fixturectl/internal/errors"
	"github.com/songbird-data/fixturectl/internal/fetch"
	"github.com/songbird-data/fixturectl/internal/tui"
)

var (
	downloadTimeout  time.Duration
	downloadRetries  int
	downloadProgress bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Fetch the published archive and expand it in place",
	Long: `download fetches the pre-built fixture archive from the configured
source URL, replaces the local archive file with it, and expands it
relative to the working directory. Files at colliding paths are
overwritten. Fetch failures and expansion failures are reported as
distinct errors.`,
	Args: cobra.NoArgs,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().DurationVar(&downloadTimeout, "timeout", 15*time.Minute, "Bound the whole download (0 for no limit)")
	downloadCmd.Flags().IntVar(&downloadRetries, "retries", fetch.DefaultRetries, "Additional fetch attempts after a failure")
	downloadCmd.Flags().BoolVar(&downloadProgress, "progress", false, "Show a live progress bar")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	l := layout()
	dest := l.ArchivePath()

	ctx := cmd.Context()
	if downloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, downloadTimeout)
		defer cancel()
	}

	// The archive lives directly under the root dir, which may not exist
	// yet on a fresh checkout.
	if err := os.MkdirAll(l.RootDir, 0o755); err != nil {
		return errors.FilesystemError("create", l.RootDir, err)
	}

	if _, err := os.Stat(dest); err == nil {
		logWarning("Replacing existing archive %s", dest)
	}

	fetcher := *getFetcher()
	fetcher.Retries = downloadRetries

	// Step 1: fetch.
	if downloadProgress {
		err := tui.RunDownload(l.SourceURL, func(onProgress func(written, total int64)) error {
			return fetcher.Download(ctx, l.SourceURL, dest, onProgress)
		})
		if err != nil {
			return err
		}
	} else {
		logInfo("Downloading %s...", l.SourceURL)
		if err := fetcher.Download(ctx, l.SourceURL, dest, nil); err != nil {
			return err
		}
	}

	// Step 2: expand.
	logInfo("Expanding %s...", dest)
	if err := archive.Unpack(dest, "."); err != nil {
		return err
	}

	logSuccess("Downloaded and expanded test data")
	return nil
}
