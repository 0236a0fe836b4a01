package theme

import (
	"fmt"
	"strings"
)

// CSS class names used by the toolbar.
const (
	ClassToolbar  = "kiosk-toolbar"
	ClassBookmark = "kiosk-bookmark"
	ClassFinished = "kiosk-finished"
)

// GenerateCSS creates the toolbar stylesheet. Scale enlarges fonts and
// padding for touch screens.
func GenerateCSS(p Palette, scale float64) string {
	if scale <= 0 {
		scale = 1.0
	}
	px := func(v float64) int { return int(v*scale + 0.5) }

	var sb strings.Builder
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")

	fmt.Fprintf(&sb, `.%s {
  background-color: @kiosk_bg;
  border-bottom: 1px solid @kiosk_border;
  padding: %dpx;
  font-size: %dpx;
}
`, ClassToolbar, px(4), px(14))

	fmt.Fprintf(&sb, `.%s button {
  color: @kiosk_text;
  min-height: %dpx;
  min-width: %dpx;
}
.%s button:disabled {
  color: @kiosk_muted;
}
`, ClassToolbar, px(32), px(32), ClassToolbar)

	fmt.Fprintf(&sb, `.%s {
  background: @kiosk_surface;
  padding: 0 %dpx;
}
`, ClassBookmark, px(10))

	fmt.Fprintf(&sb, `.%s {
  background: @kiosk_accent;
  color: #ffffff;
  font-weight: bold;
  padding: 0 %dpx;
}
`, ClassFinished, px(14))

	return sb.String()
}
