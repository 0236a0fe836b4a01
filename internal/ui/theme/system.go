package theme

import (
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// DetectSystemDarkMode reports whether the desktop prefers a dark theme.
// GTK_THEME wins over the GTK setting. Unknown means light, which suits
// brightly lit public spaces.
func DetectSystemDarkMode() bool {
	if gtkTheme := os.Getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark")
	}

	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return false
	}
	preferDark, ok := settings.ObjectProperty("gtk-application-prefer-dark-theme").(bool)
	return ok && preferDark
}

// ResolveColorScheme turns the color_scheme setting into a dark flag.
// "default" asks systemDark.
func ResolveColorScheme(scheme string, systemDark func() bool) bool {
	switch strings.ToLower(scheme) {
	case "dark", "prefer-dark":
		return true
	case "light", "prefer-light":
		return false
	default:
		return systemDark != nil && systemDark()
	}
}
