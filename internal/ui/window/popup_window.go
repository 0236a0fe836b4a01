package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/infrastructure/webkit"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/input"
)

const (
	popupWidth  = 800
	popupHeight = 600
)

// PopupHooks connect a popup to the window that opened it.
type PopupHooks struct {
	// Present shows popups opened from inside this popup.
	Present func(*webkit.WebView)
	// OnActivity receives the popup's qualifying input. Optional.
	OnActivity func()
	// OnClosed runs once, however the window goes away.
	OnClosed func(*PopupWindow)
}

// PopupWindow hosts a page-opened view in its own top-level window. It
// shares the opener's network session and policies.
type PopupWindow struct {
	window   *gtk.Window
	view     *webkit.WebView
	onClosed func(*PopupWindow)
	closed   bool
}

// NewPopupWindow wraps view in a window.
func NewPopupWindow(ctx context.Context, app *gtk.Application, view *webkit.WebView, hooks PopupHooks) *PopupWindow {
	p := &PopupWindow{
		window:   gtk.NewWindow(),
		view:     view,
		onClosed: hooks.OnClosed,
	}

	p.window.SetApplication(app)
	p.window.SetTitle(usecase.PopupTitle)
	p.window.SetDefaultSize(popupWidth, popupHeight)
	p.window.SetChild(view.Widget())

	if hooks.OnActivity != nil {
		input.AttachActivity(&p.window.Widget, hooks.OnActivity)
	}

	view.OnPopup(hooks.Present)
	// window.close() from the page.
	view.OnClose(p.Close)

	p.window.ConnectCloseRequest(func() bool {
		p.release()
		return false
	})

	logging.FromContext(ctx).Debug().Uint64("view", uint64(view.ID())).Msg("popup window created")
	return p
}

// Show presents the popup.
func (p *PopupWindow) Show() {
	p.window.Present()
}

// Close destroys the popup and its view.
func (p *PopupWindow) Close() {
	if p.closed {
		return
	}
	p.release()
	p.window.Destroy()
}

func (p *PopupWindow) release() {
	if p.closed {
		return
	}
	p.closed = true
	p.view.Destroy()
	if p.onClosed != nil {
		p.onClosed(p)
	}
}
