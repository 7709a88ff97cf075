package cli

import "github.com/charmbracelet/lipgloss"

// Ink & gold palette 🗓
// Shared theme colours for consistent branding across CLI and TUI
var (
	// Core colours
	InkGold  = lipgloss.Color("#E8A33D") // Warm gold
	InkAmber = lipgloss.Color("#C97B2D") // Deep amber
	InkRust  = lipgloss.Color("#A64B2A") // Rust red
	InkCharc = lipgloss.Color("#1A1A1A") // The poster's charcoal background
	InkPaper = lipgloss.Color("#F2E9DC") // Paper white

	// Accent colours
	WarmGray = lipgloss.Color("#8A7A5C") // Muted gold for subtle text
)
