// Package window provides the kiosk's GTK windows.
package window

import (
	"context"
	"fmt"

	webkitgtk "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/infrastructure/webkit"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/component"
	"github.com/bnema/kiosk/internal/ui/input"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
	windowTitle   = "Kiosk"
)

// Options configure the main window.
type Options struct {
	StartURL   string
	Fullscreen bool
	Navigation bool
	Bookmarks  []entity.Bookmark
	Policies   *webkit.Policies
	Zoom       *usecase.ManageZoomUseCase
	// OnActivity receives qualifying input from the main window and from
	// every popup it opens.
	OnActivity func()
}

// MainWindow is the single kiosk window: an optional toolbar above the
// browsing surface. The surface and its network session are replaced on
// every reset.
type MainWindow struct {
	app      *gtk.Application
	window   *gtk.ApplicationWindow
	rootBox  *gtk.Box
	toolbar  *component.NavToolbar
	content  *gtk.Overlay
	progress *component.ProgressBar

	opts    Options
	session *webkitgtk.NetworkSession
	view    *webkit.WebView
	popups  map[*PopupWindow]struct{}

	onFinished func()

	ctx context.Context
}

// New creates the window and its first browsing surface. The start URL is
// not loaded until Reset or LoadStart is called.
func New(ctx context.Context, app *gtk.Application, opts Options) (*MainWindow, error) {
	mw := &MainWindow{
		app:    app,
		opts:   opts,
		popups: make(map[*PopupWindow]struct{}),
		ctx:    logging.WithComponent(ctx, "main-window"),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(windowTitle)
	mw.window.SetDefaultSize(defaultWidth, defaultHeight)

	mw.rootBox = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.rootBox.SetHExpand(true)
	mw.rootBox.SetVExpand(true)

	if opts.Navigation {
		mw.toolbar = component.NewNavToolbar(opts.Bookmarks, mw.toolbarActions())
		mw.rootBox.Append(mw.toolbar.Widget())
	}

	mw.content = gtk.NewOverlay()
	mw.content.SetHExpand(true)
	mw.content.SetVExpand(true)
	mw.progress = component.NewProgressBar()
	mw.content.AddOverlay(mw.progress.Widget())
	mw.rootBox.Append(mw.content)

	mw.window.SetChild(mw.rootBox)
	if opts.OnActivity != nil {
		input.AttachActivity(&mw.window.Widget, opts.OnActivity)
	}

	if err := mw.replaceSurface(); err != nil {
		return nil, err
	}
	return mw, nil
}

func (mw *MainWindow) toolbarActions() component.ToolbarActions {
	return component.ToolbarActions{
		Back:     mw.GoBack,
		Forward:  mw.GoForward,
		Reload:   mw.Reload,
		Stop:     mw.Stop,
		ZoomIn:   mw.ZoomIn,
		ZoomOut:  mw.ZoomOut,
		Finished: mw.finished,
		Bookmark: mw.OpenBookmark,
	}
}

// OnFinished registers the "I'm Finished" handler.
func (mw *MainWindow) OnFinished(fn func()) {
	mw.onFinished = fn
}

func (mw *MainWindow) finished() {
	if mw.onFinished != nil {
		mw.onFinished()
	}
}

// replaceSurface drops the current view and session and builds new ones.
func (mw *MainWindow) replaceSurface() error {
	log := logging.FromContext(mw.ctx)

	mw.closePopups()
	if mw.view != nil {
		mw.view.Destroy()
		mw.view = nil
	}
	mw.progress.Hide()

	session := webkit.NewEphemeralSession(mw.ctx, mw.ignoreCertErrors())
	if session == nil {
		return ErrSessionCreationFailed
	}
	view, err := webkit.New(mw.ctx, session, mw.opts.Policies)
	if err != nil {
		return fmt.Errorf("failed to create web view: %w", err)
	}
	mw.session = session
	mw.view = view

	widget := view.Widget()
	widget.SetHExpand(true)
	widget.SetVExpand(true)
	// Replaces and releases the previous view.
	mw.content.SetChild(widget)

	view.OnLoadChanged(mw.handleLoadChanged)
	view.OnProgress(mw.progress.SetProgress)
	view.OnTitleChanged(mw.SetTitle)
	view.OnPopup(mw.presentPopup)

	if mw.opts.Zoom != nil {
		state, err := mw.opts.Zoom.Apply(mw.ctx, view)
		if err != nil {
			log.Warn().Err(err).Msg("failed to apply initial zoom")
		}
		mw.updateZoom(state)
	}

	log.Debug().Uint64("view", uint64(view.ID())).Msg("browsing surface created")
	return nil
}

// Reset wipes the browsing surface, shows bookmarks and loads the start URL.
func (mw *MainWindow) Reset(bookmarks []entity.Bookmark) error {
	if err := mw.replaceSurface(); err != nil {
		return err
	}
	if mw.toolbar != nil {
		mw.toolbar.SetBookmarks(bookmarks)
	}
	mw.SetTitle("")
	return mw.LoadStart()
}

// LoadStart navigates to the start URL.
func (mw *MainWindow) LoadStart() error {
	return mw.view.LoadURI(mw.ctx, mw.opts.StartURL)
}

// SetBookmarks refreshes the toolbar without touching the session.
func (mw *MainWindow) SetBookmarks(bookmarks []entity.Bookmark) {
	if mw.toolbar != nil {
		mw.toolbar.SetBookmarks(bookmarks)
	}
}

func (mw *MainWindow) handleLoadChanged(event port.LoadEvent) {
	if mw.toolbar == nil {
		return
	}
	mw.toolbar.SetLoading(event != port.LoadFinished)
	mw.toolbar.SetHistoryState(mw.view.CanGoBack(), mw.view.CanGoForward())
}

func (mw *MainWindow) ignoreCertErrors() bool {
	return mw.opts.Policies != nil && mw.opts.Policies.TLS != nil && mw.opts.Policies.TLS.Ignoring()
}

// popupHooks ties a popup, and the popups it opens in turn, back to this
// window.
func (mw *MainWindow) popupHooks() PopupHooks {
	return PopupHooks{
		Present:    mw.presentPopup,
		OnActivity: mw.opts.OnActivity,
		OnClosed: func(p *PopupWindow) {
			delete(mw.popups, p)
		},
	}
}

func (mw *MainWindow) presentPopup(view *webkit.WebView) {
	popup := NewPopupWindow(mw.ctx, mw.app, view, mw.popupHooks())
	mw.popups[popup] = struct{}{}
	popup.Show()
}

func (mw *MainWindow) closePopups() {
	for popup := range mw.popups {
		popup.Close()
	}
	clear(mw.popups)
}

// PopupCount returns the number of open popup windows.
func (mw *MainWindow) PopupCount() int {
	return len(mw.popups)
}

// GoBack navigates back in history.
func (mw *MainWindow) GoBack() {
	mw.logErr("go back", mw.view.GoBack(mw.ctx))
}

// GoForward navigates forward in history.
func (mw *MainWindow) GoForward() {
	mw.logErr("go forward", mw.view.GoForward(mw.ctx))
}

// Reload reloads the current page.
func (mw *MainWindow) Reload() {
	mw.logErr("reload", mw.view.Reload(mw.ctx))
}

// Stop stops the current load.
func (mw *MainWindow) Stop() {
	mw.logErr("stop", mw.view.Stop(mw.ctx))
}

// ZoomIn steps the zoom up.
func (mw *MainWindow) ZoomIn() {
	if mw.opts.Zoom == nil {
		return
	}
	state, err := mw.opts.Zoom.ZoomIn(mw.ctx, mw.view)
	mw.logErr("zoom in", err)
	mw.updateZoom(state)
}

// ZoomOut steps the zoom down.
func (mw *MainWindow) ZoomOut() {
	if mw.opts.Zoom == nil {
		return
	}
	state, err := mw.opts.Zoom.ZoomOut(mw.ctx, mw.view)
	mw.logErr("zoom out", err)
	mw.updateZoom(state)
}

// ResetZoom returns to the configured zoom.
func (mw *MainWindow) ResetZoom() {
	if mw.opts.Zoom == nil {
		return
	}
	state, err := mw.opts.Zoom.Apply(mw.ctx, mw.view)
	mw.logErr("reset zoom", err)
	mw.updateZoom(state)
}

func (mw *MainWindow) updateZoom(state entity.ZoomState) {
	if mw.toolbar != nil {
		mw.toolbar.SetZoomState(state)
	}
}

// OpenBookmark loads a bookmark in the current session.
func (mw *MainWindow) OpenBookmark(b entity.Bookmark) {
	logging.FromContext(mw.ctx).Debug().Str("label", b.Label).Str("url", b.URL).Msg("bookmark opened")
	mw.logErr("open bookmark", mw.view.LoadURI(mw.ctx, b.URL))
}

func (mw *MainWindow) logErr(action string, err error) {
	if err != nil {
		logging.FromContext(mw.ctx).Warn().Err(err).Str("action", action).Msg("navigation failed")
	}
}

// HasToolbar reports whether the toolbar is shown.
func (mw *MainWindow) HasToolbar() bool {
	return mw.toolbar != nil
}

// View returns the current browsing surface.
func (mw *MainWindow) View() *webkit.WebView {
	return mw.view
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.Window {
	return &mw.window.Window
}

// SetTitle shows the page title after the kiosk name.
func (mw *MainWindow) SetTitle(title string) {
	if title == "" {
		mw.window.SetTitle(windowTitle)
		return
	}
	mw.window.SetTitle(title + " - " + windowTitle)
}

// Show presents the window, fullscreen when configured.
func (mw *MainWindow) Show() {
	if mw.opts.Fullscreen {
		mw.window.Fullscreen()
	}
	mw.window.Present()
}

// Close closes popups and the window.
func (mw *MainWindow) Close() {
	mw.closePopups()
	if mw.view != nil {
		mw.view.Destroy()
	}
	mw.window.Close()
}
