package theme

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/logging"
)

// Manager installs the stylesheet and icon theme on a display.
type Manager struct {
	scheme    string
	palette   Palette
	scale     float64
	iconTheme string
	provider  *gtk.CSSProvider
}

// NewManager creates a theme manager. iconTheme may be empty to keep the
// desktop's theme. colorScheme is resolved once GTK is up.
func NewManager(iconTheme, colorScheme string, scale float64) *Manager {
	return &Manager{
		scheme:    colorScheme,
		palette:   DefaultPalette(),
		scale:     scale,
		iconTheme: iconTheme,
	}
}

// ApplyToDisplay installs CSS and switches the icon theme. A missing icon
// theme is logged and the current one kept.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)
	if display == nil {
		log.Warn().Msg("no display, theme not applied")
		return
	}

	if m.provider == nil {
		m.palette = PaletteFor(ResolveColorScheme(m.scheme, DetectSystemDarkMode))
		log.Debug().Str("color_scheme", m.scheme).Str("background", m.palette.Background).Msg("palette selected")
		m.provider = gtk.NewCSSProvider()
		m.provider.LoadFromString(GenerateCSS(m.palette, m.scale))
		gtk.StyleContextAddProviderForDisplay(display, m.provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}

	if m.iconTheme == "" {
		return
	}
	icons := gtk.IconThemeGetForDisplay(display)
	if icons == nil {
		return
	}
	if !ThemeInstalled(icons.SearchPath(), m.iconTheme) {
		log.Warn().Str("icon_theme", m.iconTheme).Msg("icon theme not installed, keeping default")
		return
	}
	icons.SetThemeName(m.iconTheme)
	log.Debug().Str("icon_theme", m.iconTheme).Msg("icon theme applied")
}

// ThemeInstalled reports whether an icon theme called name exists in any
// search path directory.
func ThemeInstalled(searchPath []string, name string) bool {
	if name == "" || filepath.Base(name) != name {
		return false
	}
	for _, dir := range searchPath {
		if _, err := os.Stat(filepath.Join(dir, name, "index.theme")); err == nil {
			return true
		}
	}
	return false
}
