// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
)

// WebViewID uniquely identifies a WebView instance.
type WebViewID uint64

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// PopupRequest contains metadata about a popup window request.
type PopupRequest struct {
	TargetURI     string
	IsUserGesture bool
	ParentViewID  WebViewID
}

// WebView defines the port interface for browser view operations.
// It exposes only the navigation and zoom capabilities the kiosk needs.
type WebView interface {
	// ID returns the unique identifier for this WebView.
	ID() WebViewID

	// LoadURI navigates to the specified URI.
	LoadURI(ctx context.Context, uri string) error

	// LoadAlternateHTML shows content in place of the page that failed to
	// load from failingURI. The failing URI stays in the back/forward list.
	LoadAlternateHTML(ctx context.Context, content, failingURI string) error

	Reload(ctx context.Context) error
	Stop(ctx context.Context) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error

	// URI returns the current URI.
	URI() string

	CanGoBack() bool
	CanGoForward() bool

	// SetZoomLevel sets the zoom level (1.0 = 100%).
	SetZoomLevel(ctx context.Context, level float64) error

	// GetZoomLevel returns the current zoom level.
	GetZoomLevel() float64

	// IsDestroyed returns true if the WebView has been destroyed.
	IsDestroyed() bool
}
