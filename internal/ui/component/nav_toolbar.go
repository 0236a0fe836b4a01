// Package component holds the kiosk's GTK widgets.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/ui/theme"
)

const (
	finishedLabel   = "I'm &Finished"
	finishedTooltip = "Click here when you are done.\nIt will clear your browsing history and return you to the start page."
	zoomInTooltip   = "Increase the size of the text and images on the page"
	zoomOutTooltip  = "Decrease the size of text and images on the page"
)

// ToolbarActions are the callbacks behind the toolbar buttons.
type ToolbarActions struct {
	Back     func()
	Forward  func()
	Reload   func()
	Stop     func()
	ZoomIn   func()
	ZoomOut  func()
	Finished func()
	Bookmark func(entity.Bookmark)
}

// NavToolbar is the row above the page: navigation, zoom, bookmarks, and
// the finished button pushed to the far right.
type NavToolbar struct {
	box       *gtk.Box
	bookmarks *gtk.Box
	actions   ToolbarActions

	back    *gtk.Button
	forward *gtk.Button
	reload  *gtk.Button
	stop    *gtk.Button
	zoomIn  *gtk.Button
	zoomOut *gtk.Button
}

// NewNavToolbar builds the toolbar.
func NewNavToolbar(bookmarks []entity.Bookmark, actions ToolbarActions) *NavToolbar {
	t := &NavToolbar{
		box:     gtk.NewBox(gtk.OrientationHorizontal, 4),
		actions: actions,
	}
	t.box.AddCSSClass(theme.ClassToolbar)

	t.back = iconButton("go-previous", "Back", actions.Back)
	t.forward = iconButton("go-next", "Forward", actions.Forward)
	t.reload = iconButton("view-refresh", "Reload", actions.Reload)
	t.stop = iconButton("process-stop", "Stop", actions.Stop)
	t.zoomIn = iconButton("zoom-in", zoomInTooltip, actions.ZoomIn)
	t.zoomOut = iconButton("zoom-out", zoomOutTooltip, actions.ZoomOut)

	for _, b := range []*gtk.Button{t.back, t.forward, t.reload, t.stop, t.zoomIn, t.zoomOut} {
		t.box.Append(b)
	}
	t.back.SetSensitive(false)
	t.forward.SetSensitive(false)
	t.stop.SetSensitive(false)

	t.box.Append(gtk.NewSeparator(gtk.OrientationVertical))

	t.bookmarks = gtk.NewBox(gtk.OrientationHorizontal, 4)
	t.box.Append(t.bookmarks)
	t.SetBookmarks(bookmarks)

	spacer := gtk.NewBox(gtk.OrientationHorizontal, 0)
	spacer.SetHExpand(true)
	t.box.Append(spacer)

	finished := textButton(finishedLabel, finishedTooltip, actions.Finished)
	finished.AddCSSClass(theme.ClassFinished)
	t.box.Append(finished)

	return t
}

// Widget returns the toolbar container.
func (t *NavToolbar) Widget() gtk.Widgetter {
	return t.box
}

// SetBookmarks replaces the bookmark buttons. A separator follows them
// when there is at least one.
func (t *NavToolbar) SetBookmarks(bookmarks []entity.Bookmark) {
	for child := t.bookmarks.FirstChild(); child != nil; child = t.bookmarks.FirstChild() {
		t.bookmarks.Remove(child)
	}
	for _, b := range bookmarks {
		bookmark := b
		button := textButton(bookmark.Label, bookmark.Tooltip(), func() {
			if t.actions.Bookmark != nil {
				t.actions.Bookmark(bookmark)
			}
		})
		button.AddCSSClass(theme.ClassBookmark)
		t.bookmarks.Append(button)
	}
	if len(bookmarks) > 0 {
		t.bookmarks.Append(gtk.NewSeparator(gtk.OrientationVertical))
	}
}

// SetZoomState disables a zoom button exactly when its limit is reached.
func (t *NavToolbar) SetZoomState(z entity.ZoomState) {
	t.zoomIn.SetSensitive(z.CanZoomIn())
	t.zoomOut.SetSensitive(z.CanZoomOut())
}

// SetHistoryState updates the back and forward buttons.
func (t *NavToolbar) SetHistoryState(canGoBack, canGoForward bool) {
	t.back.SetSensitive(canGoBack)
	t.forward.SetSensitive(canGoForward)
}

// SetLoading toggles stop and reload while a page loads.
func (t *NavToolbar) SetLoading(loading bool) {
	t.stop.SetSensitive(loading)
	t.reload.SetSensitive(!loading)
}

func iconButton(icon, tooltip string, onClick func()) *gtk.Button {
	button := gtk.NewButtonFromIconName(icon)
	button.SetTooltipText(tooltip)
	button.SetFocusOnClick(false)
	connectClick(button, onClick)
	return button
}

func textButton(label, tooltip string, onClick func()) *gtk.Button {
	button := gtk.NewButtonWithMnemonic(MnemonicLabel(label))
	if tooltip != "" {
		button.SetTooltipText(tooltip)
	}
	button.SetFocusOnClick(false)
	connectClick(button, onClick)
	return button
}

func connectClick(button *gtk.Button, onClick func()) {
	if onClick == nil {
		return
	}
	button.ConnectClicked(onClick)
}
