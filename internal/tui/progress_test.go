package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDownloadModel_Progress(t *testing.T) {
	m := NewDownload("https://example.com/data.tar.gz")

	updated, _ := m.Update(progressMsg{written: 512, total: 2048})
	m = updated.(DownloadModel)

	if m.written != 512 || m.total != 2048 {
		t.Errorf("counts = %d/%d, want 512/2048", m.written, m.total)
	}

	view := m.View()
	if !strings.Contains(view, "512 B") {
		t.Errorf("view should show written bytes, got: %s", view)
	}
	if !strings.Contains(view, "2.0 KiB") {
		t.Errorf("view should show total bytes, got: %s", view)
	}
}

func TestDownloadModel_UnknownTotal(t *testing.T) {
	m := NewDownload("x")

	updated, _ := m.Update(progressMsg{written: 100, total: -1})
	m = updated.(DownloadModel)

	view := m.View()
	if !strings.Contains(view, "received") {
		t.Errorf("view should show a byte count without a bar, got: %s", view)
	}
}

func TestDownloadModel_Done(t *testing.T) {
	m := NewDownload("x")

	wantErr := fmt.Errorf("boom")
	updated, cmd := m.Update(doneMsg{err: wantErr})
	m = updated.(DownloadModel)

	if !m.done {
		t.Error("model should be done after doneMsg")
	}
	if m.Err() != wantErr {
		t.Errorf("Err() = %v, want %v", m.Err(), wantErr)
	}
	if cmd == nil {
		t.Error("doneMsg should return a quit command")
	}
	if m.View() != "" {
		t.Errorf("done view should be empty, got: %s", m.View())
	}
}

func TestDownloadModel_Interrupt(t *testing.T) {
	m := NewDownload("x")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(DownloadModel)

	if m.Err() == nil {
		t.Error("interrupt should set an error")
	}
	if cmd == nil {
		t.Error("interrupt should return a quit command")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatBytes(tt.n); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
