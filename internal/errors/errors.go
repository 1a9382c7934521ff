package errors

import (
	"errors"
	"fmt"
)

// Exit codes for fixturectl
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitGeneratorFailed = 2
	ExitMissingInput    = 3
	ExitDownloadFailed  = 4
	ExitArchiveInvalid  = 5
	ExitConfigError     = 6
	ExitFilesystemError = 7
)

// LifecycleError is the base error type for fixturectl
type LifecycleError struct {
	Code    int
	Message string
	Cause   error
}

func (e *LifecycleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LifecycleError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *LifecycleError) ExitCode() int {
	return e.Code
}

// New creates a new LifecycleError
func New(code int, message string) *LifecycleError {
	return &LifecycleError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LifecycleError
func Wrap(code int, message string, cause error) *LifecycleError {
	return &LifecycleError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// GeneratorFailed returns an error for a generation run that did not complete
func GeneratorFailed(cause error) *LifecycleError {
	return Wrap(ExitGeneratorFailed, "fixture generation failed", cause)
}

// MissingInput returns an error for a fixture directory the archiver expected to exist
func MissingInput(path string) *LifecycleError {
	return New(ExitMissingInput, fmt.Sprintf("fixture directory not found: %s", path))
}

// DownloadFailed returns an error for a fetch that could not complete
func DownloadFailed(url string, cause error) *LifecycleError {
	return Wrap(ExitDownloadFailed, fmt.Sprintf("failed to download %s", url), cause)
}

// ArchiveInvalid returns an error for an archive that could not be expanded
func ArchiveInvalid(path string, cause error) *LifecycleError {
	return Wrap(ExitArchiveInvalid, fmt.Sprintf("invalid archive %s", path), cause)
}

// ConfigError returns an error for invalid or unreadable configuration
func ConfigError(message string, cause error) *LifecycleError {
	return Wrap(ExitConfigError, message, cause)
}

// FilesystemError returns an error for a failed filesystem operation
func FilesystemError(op, path string, cause error) *LifecycleError {
	return Wrap(ExitFilesystemError, fmt.Sprintf("failed to %s %s", op, path), cause)
}

// GetExitCode extracts the exit code from an error chain.
// Returns ExitSuccess for nil, ExitGeneralError for untyped errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var le *LifecycleError
	if errors.As(err, &le) {
		return le.Code
	}

	return ExitGeneralError
}
