// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// CLI colors. The accent matches the kiosk toolbar's dark palette.
const (
	colorText    = lipgloss.Color("#ffffff")
	colorMuted   = lipgloss.Color("#909090")
	colorAccent  = lipgloss.Color("#22c55e")
	colorSurface = lipgloss.Color("#1a1a1b")
	colorBadge   = lipgloss.Color("#2d2d2d")
	colorInk     = lipgloss.Color("#0a0a0b")
	colorBorder  = lipgloss.Color("#333333")
	colorError   = lipgloss.Color("#ef4444")
	colorWarning = lipgloss.Color("#f59e0b")
)

// Theme holds the colors and styles used by the kiosk subcommands.
type Theme struct {
	Accent  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	BadgeMuted   lipgloss.Style
	Box          lipgloss.Style

	// Confirmation dialog buttons.
	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style
}

// NewTheme creates the CLI theme.
func NewTheme() *Theme {
	text := lipgloss.NewStyle().Foreground(colorText)
	button := lipgloss.NewStyle().Padding(0, 2)

	return &Theme{
		Accent:  colorAccent,
		Error:   colorError,
		Warning: colorWarning,
		Success: colorAccent,

		Title:        text.Bold(true),
		Normal:       text,
		Subtle:       lipgloss.NewStyle().Foreground(colorMuted),
		Highlight:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		ErrorStyle:   lipgloss.NewStyle().Foreground(colorError),
		SuccessStyle: lipgloss.NewStyle().Foreground(colorAccent),
		BadgeMuted:   text.Background(colorBadge).Padding(0, 1),
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2),

		ActiveButton:   button.Foreground(colorInk).Background(colorAccent).Bold(true),
		InactiveButton: button.Foreground(colorMuted).Background(colorSurface),
	}
}
