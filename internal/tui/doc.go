// Package tui provides the terminal progress display for fixturectl.
//
// The download command can show a live progress bar while fetching the
// fixture archive:
//
//	err := tui.RunDownload(url, func(onProgress func(written, total int64)) error {
//	    return fetcher.Download(ctx, url, dest, onProgress)
//	})
//
// The display is opt-in (--progress); plain log output is the default so
// non-interactive runs stay clean.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - progress bar component
//   - github.com/charmbracelet/lipgloss - Styling
package tui
