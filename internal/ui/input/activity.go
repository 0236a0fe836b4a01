package input

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// AttachActivity reports pointer motion, key presses and key releases
// anywhere in widget to onActivity. Plain clicks and scrolls do not count.
// Controllers run in the capture phase and never consume the event.
func AttachActivity(widget *gtk.Widget, onActivity func()) {
	motion := gtk.NewEventControllerMotion()
	motion.SetPropagationPhase(gtk.PhaseCapture)
	motion.ConnectMotion(func(_, _ float64) {
		onActivity()
	})
	widget.AddController(motion)

	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(_, _ uint, _ gdk.ModifierType) bool {
		onActivity()
		return false
	})
	keys.ConnectKeyReleased(func(_, _ uint, _ gdk.ModifierType) {
		onActivity()
	})
	widget.AddController(keys)
}
