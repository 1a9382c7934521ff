package cmd

import (
	stderrors "errors"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/errors"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the external generation script to populate the fixture tree",
	Long: `generate invokes the configured generation command synchronously in the
working directory. The script creates the directories it writes into; no
validation of its output is performed, and a failed run leaves whatever
partial state the script produced.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	l := layout()

	logInfo("Generating test data under %s...", l.GeneratedRoot())

	if err := getGenerator().Generate(cmd.Context()); err != nil {
		// A script that ran and failed propagates its own exit status.
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return errors.Wrap(exitErr.ExitCode(), "fixture generation failed", err)
		}
		return errors.GeneratorFailed(err)
	}

	logSuccess("Generated test data")
	return nil
}
