package input

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/logging"
)

// ActionHandler runs a matched shortcut.
type ActionHandler func(Action)

// AttachShortcuts installs the shortcut controller on window. It runs in
// the capture phase so pages cannot swallow the quit combination.
func AttachShortcuts(ctx context.Context, window *gtk.Window, toolbar func() bool, handle ActionHandler) {
	log := logging.FromContext(ctx)

	ctrl := gtk.NewEventControllerKey()
	ctrl.SetPropagationPhase(gtk.PhaseCapture)
	ctrl.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		action := Match(keyval, state, toolbar())
		if action == ActionNone {
			return false
		}
		log.Debug().Str("action", action.String()).Msg("shortcut")
		handle(action)
		return true
	})
	window.AddController(ctrl)
}
