// Package webkit wraps the WebKitGTK web view used by the kiosk and wires
// its signals to the kiosk's popup, authentication, TLS and error-page
// policies.
package webkit

import (
	"context"
	"sync"
	"sync/atomic"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/logging"
)

// Policies are the decisions a view delegates. A popup gets the same
// Policies as its opener.
type Policies struct {
	Popups     *usecase.PopupPolicy
	TLS        *usecase.TLSPolicyUseCase
	LoadFailed *usecase.HandleLoadFailedUseCase
}

var idCounter atomic.Uint64

// credentialPersistence keeps auto-filled credentials out of every store.
// They are supplied again on each challenge.
const credentialPersistence = webkit.CredentialPersistenceNone

// WebView wraps webkit.WebView with the kiosk's policies attached.
type WebView struct {
	id       port.WebViewID
	inner    *webkit.WebView
	policies *Policies
	ctx      context.Context

	destroyed atomic.Bool

	mu sync.RWMutex
	// Callbacks set by the UI layer, always invoked on the GTK thread.
	onLoadChanged  func(port.LoadEvent)
	onTitleChanged func(string)
	onProgress     func(float64)
	onPopup        func(*WebView)
	onClose        func()
}

var _ port.WebView = (*WebView)(nil)

// New creates a top-level view bound to session.
func New(ctx context.Context, session *webkit.NetworkSession, policies *Policies) (*WebView, error) {
	inner := newSessionWebView(session)
	if inner == nil {
		return nil, ErrViewNotCreated
	}
	return wrap(ctx, inner, policies), nil
}

func wrap(ctx context.Context, inner *webkit.WebView, policies *Policies) *WebView {
	wv := &WebView{
		id:       port.WebViewID(idCounter.Add(1)),
		inner:    inner,
		policies: policies,
	}
	wv.ctx = logging.WithComponent(ctx, "webview")
	wv.applySettings()
	wv.connectSignals()
	return wv
}

func (wv *WebView) applySettings() {
	settings := wv.inner.Settings()
	if settings == nil {
		return
	}
	allow := wv.policies != nil && wv.policies.Popups != nil && wv.policies.Popups.AllowPopups
	settings.SetJavascriptCanOpenWindowsAutomatically(allow)
	settings.SetEnableDeveloperExtras(false)
}

func (wv *WebView) connectSignals() {
	log := logging.FromContext(wv.ctx)

	wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		wv.mu.RLock()
		cb := wv.onLoadChanged
		wv.mu.RUnlock()
		if cb != nil {
			cb(toPortLoadEvent(event))
		}
	})

	wv.inner.Connect("notify::uri", func() {
		log.Debug().Uint64("view", uint64(wv.id)).Str("uri", wv.inner.URI()).Msg("url changed")
	})

	wv.inner.Connect("notify::title", func() {
		wv.mu.RLock()
		cb := wv.onTitleChanged
		wv.mu.RUnlock()
		if cb != nil {
			cb(wv.inner.Title())
		}
	})

	wv.inner.Connect("notify::estimated-load-progress", func() {
		wv.mu.RLock()
		cb := wv.onProgress
		wv.mu.RUnlock()
		if cb != nil {
			cb(wv.inner.EstimatedLoadProgress())
		}
	})

	wv.inner.ConnectClose(func() {
		wv.mu.RLock()
		cb := wv.onClose
		wv.mu.RUnlock()
		if cb != nil {
			cb()
		}
	})

	wv.inner.ConnectCreate(wv.handleCreate)
	wv.inner.ConnectAuthenticate(wv.handleAuthenticate)
	wv.inner.ConnectLoadFailedWithTLSErrors(wv.handleTLSError)
	wv.inner.ConnectLoadFailed(wv.handleLoadFailed)
}

func toPortLoadEvent(event webkit.LoadEvent) port.LoadEvent {
	switch event {
	case webkit.LoadStarted:
		return port.LoadStarted
	case webkit.LoadRedirected:
		return port.LoadRedirected
	case webkit.LoadCommitted:
		return port.LoadCommitted
	default:
		return port.LoadFinished
	}
}

// handleCreate answers the create signal. Returning nil blocks the popup.
func (wv *WebView) handleCreate(action *webkit.NavigationAction) gtk.Widgetter {
	if wv.destroyed.Load() || wv.policies == nil || wv.policies.Popups == nil {
		return nil
	}

	req := port.PopupRequest{ParentViewID: wv.id}
	if action != nil {
		req.IsUserGesture = action.IsUserGesture()
		if r := action.Request(); r != nil {
			req.TargetURI = r.URI()
		}
	}
	if !wv.policies.Popups.Decide(wv.ctx, req) {
		return nil
	}

	inner := newRelatedWebView(wv.inner)
	if inner == nil {
		logging.FromContext(wv.ctx).Warn().Str("target", req.TargetURI).Msg("failed to create popup view")
		return nil
	}
	child := wrap(wv.ctx, inner, wv.policies)

	wv.mu.RLock()
	present := wv.onPopup
	wv.mu.RUnlock()

	// The window is shown once WebKit has applied the popup's features.
	inner.ConnectReadyToShow(func() {
		if present != nil {
			present(child)
		}
	})
	return inner
}

func (wv *WebView) handleAuthenticate(req *webkit.AuthenticationRequest) bool {
	var auth *usecase.AuthenticateUseCase
	if wv.policies != nil && wv.policies.Popups != nil {
		auth = wv.policies.Popups.Auth
	}
	if auth == nil {
		req.Cancel()
		return true
	}

	decision := auth.Handle(wv.ctx, usecase.AuthChallenge{
		Host:    req.Host(),
		Realm:   req.Realm(),
		IsRetry: req.IsRetry(),
	})
	if !decision.Supply {
		req.Cancel()
		return true
	}

	cred := webkit.NewCredential(decision.Credentials.User, decision.Credentials.Password, credentialPersistence)
	req.Authenticate(cred)
	return true
}

func (wv *WebView) handleTLSError(failingURI string, cert gio.TLSCertificater, flags gio.TLSCertificateFlags) bool {
	if wv.policies == nil || wv.policies.TLS == nil {
		return false
	}

	host := hostOf(failingURI)
	allow := wv.policies.TLS.Handle(wv.ctx, usecase.TLSFailure{
		FailingURI: failingURI,
		Host:       host,
		Errors:     describeTLSErrors(flags),
	})
	if !allow {
		// load-failed follows and shows the error page.
		return false
	}

	session := wv.inner.NetworkSession()
	if session == nil {
		return false
	}
	session.AllowTLSCertificateForHost(cert, host)
	wv.inner.LoadURI(failingURI)
	return true
}

func (wv *WebView) handleLoadFailed(_ webkit.LoadEvent, failingURI string, err error) bool {
	if wv.destroyed.Load() || wv.policies == nil || wv.policies.LoadFailed == nil {
		return false
	}

	failure := usecase.LoadFailure{
		FailingURI: failingURI,
		Cancelled:  isCancelled(err),
	}
	if err != nil {
		failure.Reason = err.Error()
	}

	if _, execErr := wv.policies.LoadFailed.Execute(wv.ctx, wv, failure); execErr != nil {
		logging.FromContext(wv.ctx).Error().Err(execErr).Str("uri", failingURI).Msg("failed to show error page")
		return false
	}
	// A cancelled load keeps WebKit's default handling, which shows nothing.
	return !failure.Cancelled
}

// ID returns the unique identifier for this view.
func (wv *WebView) ID() port.WebViewID {
	return wv.id
}

// Widget returns the view for embedding in a GTK container.
func (wv *WebView) Widget() *webkit.WebView {
	return wv.inner
}

// OnLoadChanged registers the load-progress callback.
func (wv *WebView) OnLoadChanged(fn func(port.LoadEvent)) {
	wv.mu.Lock()
	wv.onLoadChanged = fn
	wv.mu.Unlock()
}

// OnTitleChanged registers the title callback.
func (wv *WebView) OnTitleChanged(fn func(string)) {
	wv.mu.Lock()
	wv.onTitleChanged = fn
	wv.mu.Unlock()
}

// OnProgress registers the load progress callback, called with values in
// [0, 1].
func (wv *WebView) OnProgress(fn func(float64)) {
	wv.mu.Lock()
	wv.onProgress = fn
	wv.mu.Unlock()
}

// OnPopup registers the callback that presents an allowed popup.
func (wv *WebView) OnPopup(fn func(*WebView)) {
	wv.mu.Lock()
	wv.onPopup = fn
	wv.mu.Unlock()
}

// OnClose registers the callback for window.close() from the page.
func (wv *WebView) OnClose(fn func()) {
	wv.mu.Lock()
	wv.onClose = fn
	wv.mu.Unlock()
}

func (wv *WebView) LoadURI(ctx context.Context, uri string) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	logging.FromContext(ctx).Debug().Str("uri", uri).Msg("loading URI")
	wv.inner.LoadURI(uri)
	return nil
}

func (wv *WebView) LoadAlternateHTML(_ context.Context, content, failingURI string) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	wv.inner.LoadAlternateHTML(content, failingURI, "")
	return nil
}

func (wv *WebView) Reload(_ context.Context) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	wv.inner.Reload()
	return nil
}

func (wv *WebView) Stop(_ context.Context) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	wv.inner.StopLoading()
	return nil
}

func (wv *WebView) GoBack(_ context.Context) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	if wv.inner.CanGoBack() {
		wv.inner.GoBack()
	}
	return nil
}

func (wv *WebView) GoForward(_ context.Context) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	if wv.inner.CanGoForward() {
		wv.inner.GoForward()
	}
	return nil
}

func (wv *WebView) URI() string {
	if wv.destroyed.Load() {
		return ""
	}
	return wv.inner.URI()
}

func (wv *WebView) CanGoBack() bool {
	return !wv.destroyed.Load() && wv.inner.CanGoBack()
}

func (wv *WebView) CanGoForward() bool {
	return !wv.destroyed.Load() && wv.inner.CanGoForward()
}

func (wv *WebView) SetZoomLevel(_ context.Context, level float64) error {
	if wv.destroyed.Load() {
		return ErrViewDestroyed
	}
	wv.inner.SetZoomLevel(level)
	return nil
}

func (wv *WebView) GetZoomLevel() float64 {
	if wv.destroyed.Load() {
		return 0
	}
	return wv.inner.ZoomLevel()
}

func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed.Load()
}

// Destroy stops the view and drops callbacks. The widget itself is freed
// once its container releases it.
func (wv *WebView) Destroy() {
	if wv.destroyed.Swap(true) {
		return
	}
	wv.inner.StopLoading()
	wv.mu.Lock()
	wv.onLoadChanged = nil
	wv.onTitleChanged = nil
	wv.onProgress = nil
	wv.onPopup = nil
	wv.onClose = nil
	wv.mu.Unlock()
}
