package ui

import (
	"context"
	"time"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/idle"
	"github.com/bnema/kiosk/internal/infrastructure/webkit"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/input"
	"github.com/bnema/kiosk/internal/ui/mainloop"
	"github.com/bnema/kiosk/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.kiosk"

	bookmarksKey = "bookmarks"
)

// App wraps the GTK Application and manages the kiosk lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	sessions  *sessionController
	watchdog  *idle.Watchdog
	coalescer *mainloop.Coalescer
	inhibited bool

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// gtkApplicationFlags lets several kiosk instances run side by side, each
// with its own config.
func gtkApplicationFlags() gio.ApplicationFlags {
	return gio.ApplicationNonUnique
}

// Run starts the GTK main loop and blocks until the kiosk quits.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	ctx, a.cancel = context.WithCancelCause(ctx)

	a.gtkApp = gtk.NewApplication(AppID, gtkApplicationFlags())
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}
	cfg := a.deps.Config

	if a.deps.Theme != nil {
		a.deps.Theme.ApplyToDisplay(ctx, gdk.DisplayGetDefault())
	}

	a.sessions = &sessionController{
		ctx:     ctx,
		resetUC: a.deps.ResetUC,
		auth:    a.deps.AuthUC,
		tls:     a.deps.TLSUC,
		logs:    a.deps.SessionLog,
	}
	bookmarks := a.sessions.start()

	a.initWatchdog(ctx)

	mw, err := window.New(ctx, a.gtkApp, a.windowOptions(bookmarks))
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.mainWindow = mw
	a.sessions.surface = mw
	mw.OnFinished(func() { a.sessions.reset(entity.ResetFinished) })

	a.watchdog.Start(ctx)
	input.AttachShortcuts(ctx, mw.Window(), mw.HasToolbar, a.handleAction)
	input.AttachGestures(ctx, &mw.Window().Widget, mw.HasToolbar, a.handleAction)
	a.watchConfig(ctx)
	a.inhibitScreensaver(ctx)

	if err := mw.LoadStart(); err != nil {
		log.Error().Err(err).Msg("failed to load start page")
	}
	mw.Show()
	log.Info().Str("start_url", cfg.StartURL).Msg("kiosk ready")
}

func (a *App) initWatchdog(ctx context.Context) {
	timeout := time.Duration(a.deps.Config.Timeout) * time.Second
	a.watchdog = idle.NewWatchdog(timeout, mainloop.Scheduler{}, func() {
		logging.FromContext(ctx).Info().Dur("timeout", timeout).Msg("inactivity timeout reached")
		a.sessions.reset(entity.ResetInactivity)
	})
	a.sessions.restartIdle = func() { a.watchdog.Start(ctx) }
}

// windowOptions builds the main window settings. Input in the main window
// and in every popup feeds the watchdog.
func (a *App) windowOptions(bookmarks []entity.Bookmark) window.Options {
	cfg := a.deps.Config
	opts := window.Options{
		StartURL:   cfg.StartURL,
		Fullscreen: cfg.Fullscreen,
		Navigation: cfg.Navigation,
		Bookmarks:  bookmarks,
		Policies: &webkit.Policies{
			Popups:     a.deps.PopupPolicy,
			TLS:        a.deps.TLSUC,
			LoadFailed: a.deps.LoadFailedUC,
		},
		Zoom: a.deps.ZoomUC,
	}
	if a.watchdog != nil {
		opts.OnActivity = a.watchdog.Activity
	}
	return opts
}

// watchConfig pushes bookmark edits to the toolbar without a reset.
func (a *App) watchConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil || !a.mainWindow.HasToolbar() {
		return
	}
	log := logging.FromContext(ctx)

	a.coalescer = mainloop.NewCoalescer(mainloop.IdlePost)
	mgr.OnConfigChange(func(*config.Config) {
		a.coalescer.Post(bookmarksKey, func() {
			bookmarks, err := mgr.Bookmarks(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("failed to read bookmarks")
				return
			}
			a.sessions.setBookmarks(bookmarks)
			a.mainWindow.SetBookmarks(bookmarks)
			log.Info().Int("count", len(bookmarks)).Msg("bookmarks reloaded")
		})
	})
	if err := mgr.Watch(ctx); err != nil {
		log.Debug().Err(err).Msg("config file not watched")
	}
}

func (a *App) inhibitScreensaver(ctx context.Context) {
	if a.deps.IdleInhibitor == nil || !a.deps.Config.InhibitScreensaver {
		return
	}
	if err := a.deps.IdleInhibitor.Inhibit(ctx, idle.InhibitReason); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("screensaver stays active")
		return
	}
	a.inhibited = true
}

func (a *App) handleAction(action input.Action) {
	switch action {
	case input.ActionQuit:
		a.Quit()
	case input.ActionZoomIn:
		a.mainWindow.ZoomIn()
	case input.ActionZoomOut:
		a.mainWindow.ZoomOut()
	case input.ActionResetZoom:
		a.mainWindow.ResetZoom()
	case input.ActionGoBack:
		a.mainWindow.GoBack()
	case input.ActionGoForward:
		a.mainWindow.GoForward()
	}
}

// Quit closes every window and leaves the main loop.
func (a *App) Quit() {
	if a.mainWindow != nil {
		a.mainWindow.Close()
	}
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// QuitFromSignal schedules Quit on the main loop. Safe from any goroutine.
func (a *App) QuitFromSignal() {
	mainloop.IdlePost(a.Quit)
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.watchdog != nil {
		a.watchdog.Stop()
	}
	if a.coalescer != nil {
		a.coalescer.Destroy()
	}
	if a.sessions != nil {
		a.sessions.end()
	}
	if a.inhibited {
		if err := a.deps.IdleInhibitor.Uninhibit(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to release screensaver inhibit")
		}
	}
	if a.cancel != nil {
		a.cancel(context.Canceled)
	}
	log.Info().Msg("kiosk shut down")
}
