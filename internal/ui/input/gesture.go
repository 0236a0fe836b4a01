package input

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/logging"
)

const (
	mouseButtonBack    = 8
	mouseButtonForward = 9
)

// MatchButton maps a mouse press to a navigation action. Like the keyboard
// zoom shortcuts, the side buttons only navigate while the toolbar is shown.
func MatchButton(button uint, nPress int, toolbar bool) Action {
	if !toolbar || nPress != 1 {
		return ActionNone
	}
	switch button {
	case mouseButtonBack:
		return ActionGoBack
	case mouseButtonForward:
		return ActionGoForward
	default:
		return ActionNone
	}
}

// AttachGestures routes the mouse side buttons on widget to handle.
func AttachGestures(ctx context.Context, widget *gtk.Widget, toolbar func() bool, handle ActionHandler) {
	log := logging.FromContext(ctx)

	click := gtk.NewGestureClick()
	// All buttons, not just primary.
	click.SetButton(0)
	click.SetPropagationPhase(gtk.PhaseCapture)
	click.ConnectPressed(func(nPress int, _, _ float64) {
		button := click.CurrentButton()
		action := MatchButton(button, nPress, toolbar())
		if action == ActionNone {
			return
		}
		click.SetState(gtk.EventSequenceClaimed)
		log.Debug().Uint("button", button).Str("action", action.String()).Msg("mouse gesture")
		handle(action)
	})
	widget.AddController(click)
}
