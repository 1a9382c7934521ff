// Package logging provides logging utilities for fixturectl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("packing directory", "path", root)
//	logging.Warn("retrying download", "attempt", attempt, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Downloading %s...", url)
//	logging.UserSuccess("Wrote archive %s", path)
//	logging.UserWarning("Archive already exists, overwriting")
//	logging.UserError("Generation failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: UserOut (stdout by default)
//   - UserWarning, UserError: UserErr (stderr by default)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
