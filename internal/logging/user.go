package logging

import (
	"fmt"
	"io"
	"os"
)

// User-facing output with status glyph prefixes, separate from the
// structured debug logging. Destinations are variables so command tests
// can capture output.

var (
	// UserOut receives info and success messages.
	UserOut io.Writer = os.Stdout

	// UserErr receives warning and error messages.
	UserErr io.Writer = os.Stderr
)

// UserInfo prints an info message.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(UserOut, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(UserOut, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(UserErr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message.
func UserError(format string, args ...interface{}) {
	fmt.Fprintf(UserErr, "✗ "+format+"\n", args...)
}
