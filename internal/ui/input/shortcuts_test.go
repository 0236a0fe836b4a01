package input

import (
	"testing"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	ctrlAlt := gdk.ControlMask | gdk.AltMask

	tests := []struct {
		name    string
		keyval  uint
		state   gdk.ModifierType
		toolbar bool
		want    Action
	}{
		{"ctrl alt q quits", gdk.KEY_q, ctrlAlt, false, ActionQuit},
		{"quit with caps lock", gdk.KEY_Q, ctrlAlt | gdk.LockMask, true, ActionQuit},
		{"ctrl q alone does nothing", gdk.KEY_q, gdk.ControlMask, true, ActionNone},
		{"alt q alone does nothing", gdk.KEY_q, gdk.AltMask, true, ActionNone},
		{"ctrl alt shift q does nothing", gdk.KEY_Q, ctrlAlt | gdk.ShiftMask, true, ActionNone},
		{"alt plus zooms in", gdk.KEY_plus, gdk.AltMask, true, ActionZoomIn},
		{"alt shift plus zooms in", gdk.KEY_plus, gdk.AltMask | gdk.ShiftMask, true, ActionZoomIn},
		{"alt keypad minus zooms out", gdk.KEY_KP_Subtract, gdk.AltMask, true, ActionZoomOut},
		{"alt zero resets zoom", gdk.KEY_0, gdk.AltMask, true, ActionResetZoom},
		{"zoom needs toolbar", gdk.KEY_plus, gdk.AltMask, false, ActionNone},
		{"plain plus is typed", gdk.KEY_plus, 0, true, ActionNone},
		{"ctrl alt plus is not zoom", gdk.KEY_plus, ctrlAlt, true, ActionNone},
		{"pointer buttons are ignored", gdk.KEY_minus, gdk.AltMask | gdk.Button1Mask, true, ActionZoomOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.keyval, tt.state, tt.toolbar))
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "zoom-in", ActionZoomIn.String())
	assert.Equal(t, "unknown", Action(99).String())
}

func TestMatchButton(t *testing.T) {
	tests := []struct {
		name    string
		button  uint
		nPress  int
		toolbar bool
		want    Action
	}{
		{"back button", 8, 1, true, ActionGoBack},
		{"forward button", 9, 1, true, ActionGoForward},
		{"double press ignored", 8, 2, true, ActionNone},
		{"primary click passes through", 1, 1, true, ActionNone},
		{"needs toolbar", 8, 1, false, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchButton(tt.button, tt.nPress, tt.toolbar))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "go-back", ActionGoBack.String())
	assert.Equal(t, "go-forward", ActionGoForward.String())
	assert.Equal(t, "unknown", Action(99).String())
}
