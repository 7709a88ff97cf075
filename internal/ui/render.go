// Package ui implements the interactive terminal display shown while a
// poster renders: a cover-fetch spinner, a per-volume progress bar and
// a completion summary.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FetchStarted signals that cover URL lookup has begun.
type FetchStarted struct {
	Title string
}

// FetchComplete reports the outcome of the cover URL lookup.
type FetchComplete struct {
	Resolved int
	Missing  []int
}

// RenderProgress reports per-volume drawing progress.
type RenderProgress struct {
	Completed int
	Total     int
	Label     string
}

// RenderWarning carries a non-fatal problem such as a failed cover
// download.
type RenderWarning struct {
	Message string
}

// RenderComplete signals the poster has been written to disk.
type RenderComplete struct {
	OutputFile string
	Width      int
	Height     int
	Layers     int
	Duration   time.Duration
}

// RenderFailed aborts the UI with an error.
type RenderFailed struct {
	Err error
}

// quitTimerMsg is sent when it's time to quit after showing completion
type quitTimerMsg struct{}

// renderModel implements the Bubbletea model for a poster render.
type renderModel struct {
	spinner  spinner.Model
	progress progress.Model

	fetchTitle string
	fetched    *FetchComplete
	lastUpdate RenderProgress
	warnings   []string
	complete   *RenderComplete
	err        error

	startTime       time.Time
	width           int
	completionDelay time.Duration
}

// NewRenderModel creates the UI model for a poster render.
func NewRenderModel() tea.Model {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	s := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &renderModel{
		spinner:         s,
		progress:        p,
		startTime:       time.Now(),
		completionDelay: 2 * time.Second,
	}
}

// Init initializes the model
func (m *renderModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m *renderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-30, 50)
		return m, nil

	case FetchStarted:
		m.fetchTitle = msg.Title
		return m, nil

	case FetchComplete:
		m.fetched = &msg
		return m, nil

	case RenderProgress:
		m.lastUpdate = msg
		return m, nil

	case RenderWarning:
		m.warnings = append(m.warnings, msg.Message)
		return m, nil

	case RenderComplete:
		m.complete = &msg
		return m, tea.Tick(m.completionDelay, func(t time.Time) tea.Msg {
			return quitTimerMsg{}
		})

	case RenderFailed:
		m.err = msg.Err
		return m, tea.Quit

	case quitTimerMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		// Any key skips the completion screen; ctrl+c always quits.
		if m.complete != nil || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m *renderModel) View() string {
	if m.err != nil {
		return ""
	}
	if m.complete != nil {
		return m.renderComplete()
	}
	return m.renderProgress()
}

func (m *renderModel) renderProgress() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E8A33D")).
		Render("Posterize 🗓")

	s.WriteString(title)
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Rendering schedule poster"))
	s.WriteString("\n\n")

	// Cover fetch status
	if m.fetched == nil && m.fetchTitle != "" {
		s.WriteString(m.spinner.View())
		s.WriteString(lipgloss.NewStyle().Faint(true).
			Render(fmt.Sprintf("Fetching covers for %s...", m.fetchTitle)))
		s.WriteString("\n\n")
	} else if m.fetched != nil {
		s.WriteString(lipgloss.NewStyle().Faint(true).
			Render(fmt.Sprintf("Covers resolved: %d", m.fetched.Resolved)))
		if len(m.fetched.Missing) > 0 {
			s.WriteString(lipgloss.NewStyle().Faint(true).
				Render(fmt.Sprintf("  │  placeholders: %d", len(m.fetched.Missing))))
		}
		s.WriteString("\n\n")
	}

	// Volume progress
	if m.lastUpdate.Total > 0 {
		percent := float64(m.lastUpdate.Completed) / float64(m.lastUpdate.Total)
		s.WriteString(m.progress.ViewAs(percent))
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Faint(true).
			Render(fmt.Sprintf("%s  │  %d/%d  │  Elapsed: %s",
				m.lastUpdate.Label,
				m.lastUpdate.Completed, m.lastUpdate.Total,
				formatDuration(time.Since(m.startTime)))))
		s.WriteString("\n")
	}

	if len(m.warnings) > 0 {
		s.WriteString("\n")
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D08770"))
		for _, w := range m.warnings {
			s.WriteString(warnStyle.Render("⚠ " + w))
			s.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#E8A33D")).
		Padding(1, 2).
		Render(s.String())
}

func (m *renderModel) renderComplete() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4A9B4A")).
		Render("✓ Poster Complete!")

	s.WriteString(title)
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("  Output:     %s\n", m.complete.OutputFile))
	s.WriteString(fmt.Sprintf("  Canvas:     %d×%d px\n", m.complete.Width, m.complete.Height))
	s.WriteString(fmt.Sprintf("  Layers:     %d\n", m.complete.Layers))
	if len(m.warnings) > 0 {
		s.WriteString(fmt.Sprintf("  Warnings:   %d\n", len(m.warnings)))
	}
	s.WriteString(fmt.Sprintf("\nRendered in %.2fs", m.complete.Duration.Seconds()))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4A9B4A")).
		Padding(1, 2).
		Render(s.String()) + "\n"
}

// formatDuration renders an elapsed time as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
