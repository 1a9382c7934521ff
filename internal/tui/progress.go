package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// progressMsg carries download byte counts into the model.
type progressMsg struct {
	written int64
	total   int64
}

// doneMsg ends the program with the download's result.
type doneMsg struct {
	err error
}

// DownloadModel is the bubbletea model for the download progress display.
type DownloadModel struct {
	label   string
	bar     progress.Model
	written int64
	total   int64
	err     error
	done    bool
}

// NewDownload creates a progress model labeled with the source being fetched.
func NewDownload(label string) DownloadModel {
	return DownloadModel{
		label: label,
		bar:   progress.New(progress.WithDefaultGradient()),
		total: -1,
	}
}

func (m DownloadModel) Init() tea.Cmd {
	return nil
}

func (m DownloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = fmt.Errorf("interrupted")
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		m.written = msg.written
		m.total = msg.total
		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.written) / float64(m.total))
		}
		return m, nil

	case doneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m DownloadModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("Downloading "+m.label) + "\n")

	if m.total > 0 {
		b.WriteString(m.bar.View() + "\n")
		b.WriteString(countStyle.Render(fmt.Sprintf("%s / %s", formatBytes(m.written), formatBytes(m.total))) + "\n")
	} else {
		b.WriteString(countStyle.Render(formatBytes(m.written)+" received") + "\n")
	}

	return b.String()
}

// Err returns the result carried by the final doneMsg.
func (m DownloadModel) Err() error {
	return m.err
}

// RunDownload displays a progress bar while run executes. The run function
// receives a callback to report byte progress and its error becomes the
// return value once the display has shut down.
func RunDownload(label string, run func(onProgress func(written, total int64)) error) error {
	p := tea.NewProgram(NewDownload(label))

	go func() {
		err := run(func(written, total int64) {
			p.Send(progressMsg{written: written, total: total})
		})
		p.Send(doneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}

	return final.(DownloadModel).Err()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
