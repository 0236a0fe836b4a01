// Package input tracks user activity and handles the kiosk's keyboard
// shortcuts.
package input

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
)

// Action is a kiosk command triggered from the keyboard or mouse.
type Action int

const (
	ActionNone Action = iota
	// ActionQuit closes the kiosk. Staff use it; it has no toolbar button.
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionResetZoom
	ActionGoBack
	ActionGoForward
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionResetZoom:
		return "reset-zoom"
	case ActionGoBack:
		return "go-back"
	case ActionGoForward:
		return "go-forward"
	default:
		return "unknown"
	}
}

// Modifier is the subset of GDK modifier state shortcuts look at.
type Modifier uint

const (
	ModNone  Modifier = 0
	ModShift Modifier = Modifier(gdk.ShiftMask)
	ModCtrl  Modifier = Modifier(gdk.ControlMask)
	ModAlt   Modifier = Modifier(gdk.AltMask)
)

// modifierMask drops lock keys and pointer buttons from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

// Match maps a key press to an action. Zoom shortcuts only exist while the
// toolbar is shown, mirroring its buttons. Shift is ignored for zoom because
// plus needs it on many layouts.
func Match(keyval uint, state gdk.ModifierType, toolbar bool) Action {
	mods := Modifier(state) & modifierMask

	if mods&(ModCtrl|ModAlt) == ModCtrl|ModAlt && mods&ModShift == 0 {
		switch keyval {
		case gdk.KEY_q, gdk.KEY_Q:
			return ActionQuit
		}
	}

	if !toolbar || mods&^ModShift != ModAlt {
		return ActionNone
	}
	switch keyval {
	case gdk.KEY_plus, gdk.KEY_equal, gdk.KEY_KP_Add:
		return ActionZoomIn
	case gdk.KEY_minus, gdk.KEY_underscore, gdk.KEY_KP_Subtract:
		return ActionZoomOut
	case gdk.KEY_0, gdk.KEY_KP_0:
		return ActionResetZoom
	}
	return ActionNone
}
