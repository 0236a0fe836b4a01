package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath shows the file in use, or where one would be read from.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if !exists {
		return fmt.Sprintf(
			"\n  %s Config %s\n  %s\n",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render(path),
			r.theme.Subtle.Render("No file yet. Run 'kiosk config init' to create one."),
		)
	}
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Highlight.Render(path))
}

// RenderWarnings lists problems found while loading the file. Each one was
// replaced by a default.
func (r *ConfigRenderer) RenderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %d problem(s), defaults used instead:\n",
		iconStyle.Render(IconWarning), len(warnings)))
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("    %s %s\n", r.theme.Subtle.Render(IconCursor), w))
	}
	return sb.String()
}

// RenderCreated renders the success message after config init.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote %s\n", iconStyle.Render(IconCheck), r.theme.Highlight.Render(path))
}

// RenderCanceled renders the message shown when the user declines.
func (r *ConfigRenderer) RenderCanceled() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Nothing written."))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
