package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/songbird-data/fixturectl/internal/fixtures"
)

var (
	infoHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	infoDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configured paths, source URL, and on-disk state",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	l := layout()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, infoHeaderStyle.Render("Fixture directories"))
	for _, root := range l.FixtureRoots() {
		st := fixtures.Status(root)
		fmt.Fprintf(out, "  %s %s", boolStatus(st.Exists), root)
		if st.Exists {
			fmt.Fprintf(out, " %s", infoDetailStyle.Render(fmt.Sprintf("(%d files, %d bytes)", st.Files, st.Bytes)))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, infoHeaderStyle.Render("Archive"))
	st := fixtures.Status(l.ArchivePath())
	fmt.Fprintf(out, "  %s %s", boolStatus(st.Exists), l.ArchivePath())
	if st.Exists {
		fmt.Fprintf(out, " %s", infoDetailStyle.Render(fmt.Sprintf("(%d bytes)", st.Bytes)))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Source URL: %s\n", l.SourceURL)
	fmt.Fprintf(out, "Generator: %s\n", l.Generator)

	return nil
}

func boolStatus(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
