package usecase_test

import (
	"context"
	"errors"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var errViewGone = errors.New("view gone")

// fakeWebView records navigation calls and keeps zoom state.
type fakeWebView struct {
	uri       string
	zoom      float64
	html      string
	htmlFor   string
	destroyed bool
	zoomErr   error
}

var _ port.WebView = (*fakeWebView)(nil)

func newFakeWebView(uri string) *fakeWebView {
	return &fakeWebView{uri: uri, zoom: 1.0}
}

func (*fakeWebView) ID() port.WebViewID { return 1 }

func (f *fakeWebView) LoadURI(_ context.Context, uri string) error {
	if f.destroyed {
		return errViewGone
	}
	f.uri = uri
	return nil
}

func (f *fakeWebView) LoadAlternateHTML(_ context.Context, content, failingURI string) error {
	if f.destroyed {
		return errViewGone
	}
	f.html = content
	f.htmlFor = failingURI
	return nil
}

func (*fakeWebView) Reload(context.Context) error    { return nil }
func (*fakeWebView) Stop(context.Context) error      { return nil }
func (*fakeWebView) GoBack(context.Context) error    { return nil }
func (*fakeWebView) GoForward(context.Context) error { return nil }
func (f *fakeWebView) URI() string                   { return f.uri }
func (*fakeWebView) CanGoBack() bool                 { return false }
func (*fakeWebView) CanGoForward() bool              { return false }
func (f *fakeWebView) IsDestroyed() bool             { return f.destroyed }
func (f *fakeWebView) GetZoomLevel() float64         { return f.zoom }

func (f *fakeWebView) SetZoomLevel(_ context.Context, level float64) error {
	if f.zoomErr != nil {
		return f.zoomErr
	}
	f.zoom = level
	return nil
}
