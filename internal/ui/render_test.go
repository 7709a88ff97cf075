package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestFormatDuration verifies elapsed times render as m:ss.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0:00"},
		{d: 9 * time.Second, want: "0:09"},
		{d: 61 * time.Second, want: "1:01"},
		{d: 10 * time.Minute, want: "10:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestRenderModelProgressView verifies the progress view reflects the
// latest per-volume update and accumulated warnings.
func TestRenderModelProgressView(t *testing.T) {
	m := NewRenderModel()

	m, _ = m.Update(RenderProgress{Completed: 2, Total: 5, Label: "Volume 3"})
	m, _ = m.Update(RenderWarning{Message: "volume 4 cover: timeout"})

	view := m.View()
	if !strings.Contains(view, "Volume 3") {
		t.Error("view missing current volume label")
	}
	if !strings.Contains(view, "2/5") {
		t.Error("view missing progress counter")
	}
	if !strings.Contains(view, "timeout") {
		t.Error("view missing warning")
	}
}

// TestRenderModelCompleteView verifies completion switches to the
// summary screen and schedules a quit.
func TestRenderModelCompleteView(t *testing.T) {
	m := NewRenderModel()

	m, cmd := m.Update(RenderComplete{
		OutputFile: "output/images/poster.png",
		Width:      2540,
		Height:     2600,
		Layers:     23,
		Duration:   3 * time.Second,
	})
	if cmd == nil {
		t.Error("completion should schedule the quit timer")
	}

	view := m.View()
	if !strings.Contains(view, "poster.png") {
		t.Error("summary missing output path")
	}
	if !strings.Contains(view, "23") {
		t.Error("summary missing layer count")
	}
}

// TestRenderModelFailureQuits verifies a render failure quits
// immediately with an empty view.
func TestRenderModelFailureQuits(t *testing.T) {
	m := NewRenderModel()

	m, cmd := m.Update(RenderFailed{Err: errTest})
	if cmd == nil {
		t.Fatal("failure should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("failure command = %v, want tea.Quit", msg)
	}
	if m.View() != "" {
		t.Error("failed model should render nothing")
	}
}

type testError string

func (e testError) Error() string { return string(e) }

var errTest = testError("boom")
