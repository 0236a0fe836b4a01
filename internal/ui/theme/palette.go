// Package theme styles the kiosk toolbar and selects the icon theme.
package theme

import (
	"fmt"
	"strings"
)

// Palette holds semantic color tokens for the toolbar.
type Palette struct {
	Background string // Toolbar background
	Surface    string // Button background
	Text       string // Labels
	Muted      string // Disabled buttons
	Accent     string // The finished button
	Border     string // Separators
}

// DefaultPalette is a light palette with enough contrast for public screens.
func DefaultPalette() Palette {
	return Palette{
		Background: "#fafafa",
		Surface:    "#ffffff",
		Text:       "#1a1a1a",
		Muted:      "#909090",
		Accent:     "#22c55e",
		Border:     "#dddddd",
	}
}

// DarkPalette keeps the same accent on a dark toolbar.
func DarkPalette() Palette {
	return Palette{
		Background: "#1f1f1f",
		Surface:    "#2b2b2b",
		Text:       "#f2f2f2",
		Muted:      "#7a7a7a",
		Accent:     "#22c55e",
		Border:     "#3a3a3a",
	}
}

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette()
	}
	return DefaultPalette()
}

// ToCSSVars renders the palette as GTK CSS color definitions.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, kv := range [][2]string{
		{"kiosk_bg", p.Background},
		{"kiosk_surface", p.Surface},
		{"kiosk_text", p.Text},
		{"kiosk_muted", p.Muted},
		{"kiosk_accent", p.Accent},
		{"kiosk_border", p.Border},
	} {
		fmt.Fprintf(&sb, "@define-color %s %s;\n", kv[0], kv[1])
	}
	return sb.String()
}
