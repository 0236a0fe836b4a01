package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>
#include <gtk/gtk.h>

// network-session and related-view are construct-only, so the view has to
// come from g_object_new. A related view shares its parent's session.
static inline WebKitWebView* kiosk_new_web_view(WebKitNetworkSession* session, WebKitWebView* related) {
	if (related) {
		return WEBKIT_WEB_VIEW(g_object_new(WEBKIT_TYPE_WEB_VIEW, "related-view", related, NULL));
	}
	return WEBKIT_WEB_VIEW(g_object_new(WEBKIT_TYPE_WEB_VIEW, "network-session", session, NULL));
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// newSessionWebView creates a top-level view bound to session.
func newSessionWebView(session *webkit.NetworkSession) *webkit.WebView {
	if session == nil {
		return webkit.NewWebView()
	}
	native := (*C.WebKitNetworkSession)(unsafe.Pointer(coreglib.InternObject(session).Native()))
	view := wrapWebView(C.kiosk_new_web_view(native, nil))
	runtime.KeepAlive(session)
	return view
}

// newRelatedWebView creates a popup view sharing parent's session and
// web process, as the create signal requires.
func newRelatedWebView(parent *webkit.WebView) *webkit.WebView {
	if parent == nil {
		return nil
	}
	native := (*C.WebKitWebView)(unsafe.Pointer(coreglib.InternObject(parent).Native()))
	view := wrapWebView(C.kiosk_new_web_view(nil, native))
	runtime.KeepAlive(parent)
	return view
}

// wrapWebView builds the gotk4 struct hierarchy around a native view, the
// same layout gotk4's unexported wrapper produces.
func wrapWebView(native *C.WebKitWebView) *webkit.WebView {
	if native == nil {
		return nil
	}
	obj := coreglib.Take(unsafe.Pointer(native))
	return &webkit.WebView{
		WebViewBase: webkit.WebViewBase{
			Widget: gtk.Widget{
				InitiallyUnowned: coreglib.InitiallyUnowned{Object: obj},
				Object:           obj,
				Accessible:       gtk.Accessible{Object: obj},
				Buildable:        gtk.Buildable{Object: obj},
				ConstraintTarget: gtk.ConstraintTarget{Object: obj},
			},
		},
	}
}
