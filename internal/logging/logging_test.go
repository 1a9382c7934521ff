package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	if !Verbose {
		t.Error("Verbose flag should be true after Setup(true, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	if Verbose {
		t.Error("Verbose flag should be false after Setup(false, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("warn test", "key", "value")
	Error("error test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "warn test") {
		t.Errorf("Expected 'warn test' in output, got: %s", output)
	}
	if !strings.Contains(output, "error test") {
		t.Errorf("Expected 'error test' in output, got: %s", output)
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	origOut, origErr := UserOut, UserErr
	UserOut, UserErr = &out, &errOut
	defer func() { UserOut, UserErr = origOut, origErr }()

	UserInfo("downloading %s", "data.tar.gz")
	UserSuccess("done")
	UserWarning("overwriting %s", "data.tar.gz")
	UserError("failed: %v", "boom")

	if !strings.Contains(out.String(), "downloading data.tar.gz") {
		t.Errorf("UserInfo missing from stdout writer: %s", out.String())
	}
	if !strings.Contains(out.String(), "done") {
		t.Errorf("UserSuccess missing from stdout writer: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "overwriting data.tar.gz") {
		t.Errorf("UserWarning missing from stderr writer: %s", errOut.String())
	}
	if !strings.Contains(errOut.String(), "failed: boom") {
		t.Errorf("UserError missing from stderr writer: %s", errOut.String())
	}
}
