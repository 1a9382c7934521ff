// Package errors provides typed errors with exit codes for fixturectl.
//
// # Error Types
//
// LifecycleError is the base error type that wraps an error with an exit code:
//
//	type LifecycleError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitGeneratorFailed = 2  // Generation script missing or exited non-zero
//	ExitMissingInput    = 3  // Fixture directory expected by the archiver is absent
//	ExitDownloadFailed  = 4  // Archive could not be fetched from the remote source
//	ExitArchiveInvalid  = 5  // Archive could not be decompressed or expanded
//	ExitConfigError     = 6  // Configuration error
//	ExitFilesystemError = 7  // Write or delete denied by the OS
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.GeneratorFailed(err)
//	errors.MissingInput("tests/data_for_tests/generated/configs")
//	errors.DownloadFailed(url, err)
//	errors.ArchiveInvalid(path, err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
