// Package generator defines the fixture-generation provider for fixturectl.
// The generation logic itself lives in an external script; this package
// only invokes it. The Provider interface exists so commands and tests can
// swap in a fake without running a real process.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/songbird-data/fixturectl/internal/logging"
)

// Provider produces the fixture tree.
type Provider interface {
	// Generate runs the generation procedure synchronously. The procedure
	// is responsible for creating the directories it writes into; no
	// validation of its output is performed and no rollback happens on
	// failure.
	Generate(ctx context.Context) error
}

// Script invokes an external command line in the working directory,
// with stdout and stderr passed through.
type Script struct {
	// Command is the full command line, split with shell quoting rules.
	Command string

	// Dir is the working directory; empty means the current directory.
	Dir string

	// Stdout and Stderr default to the process streams when nil.
	Stdout io.Writer
	Stderr io.Writer
}

// NewScript returns a Provider that runs the given command line.
func NewScript(command string) *Script {
	return &Script{Command: command}
}

// Generate implements Provider.
func (s *Script) Generate(ctx context.Context) error {
	words, err := shellquote.Split(s.Command)
	if err != nil {
		return fmt.Errorf("invalid generator command %q: %w", s.Command, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("generator command is empty")
	}

	logging.Debug("running generator", "command", words[0], "args", words[1:])

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = s.Dir
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("generator %q: %w", words[0], err)
	}
	return nil
}
