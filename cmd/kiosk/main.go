package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/cli"
	"github.com/bnema/kiosk/internal/cli/cmd"
	"github.com/bnema/kiosk/internal/domain/build"
	"github.com/bnema/kiosk/internal/infrastructure/idle"
	"github.com/bnema/kiosk/internal/infrastructure/webkit/errorpage"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui"
	"github.com/bnema/kiosk/internal/ui/theme"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetBrowseFunc(runBrowser)
	cmd.Execute()
}

// startupResult collects what the parallel startup phase produced.
type startupResult struct {
	journal   port.SessionJournal
	inhibitor *idle.PortalInhibitor
	pages     *errorpage.Renderer
}

// runBrowser runs the graphical kiosk until it quits.
func runBrowser(app *cli.App) int {
	// GTK must stay on the main thread.
	runtime.LockOSThread()

	ctx := app.Ctx()
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	cfg := app.Config
	logging.InstallGLibLogHandler(ctx, *log, logging.ParseLevel(cfg.Logging.Level) <= logging.ParseLevel("debug"))
	logCoreDumpLimits(ctx)

	started, err := runParallelInit(ctx, app)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	if started.inhibitor != nil {
		defer func() { _ = started.inhibitor.Close() }()
	}

	zoomUC := usecase.NewManageZoomUseCase(cfg.ZoomFactor)
	authUC := usecase.NewAuthenticateUseCase(usecase.Credentials{
		User:     cfg.DefaultUser,
		Password: cfg.DefaultPassword,
	}, cfg.AuthMaxAttempts)

	deps := &ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: app.Manager,
		Theme:         theme.NewManager(cfg.IconTheme, cfg.ColorScheme, 1.0),
		ZoomUC:        zoomUC,
		AuthUC:        authUC,
		TLSUC:         usecase.NewTLSPolicyUseCase(cfg.IgnoreCertificateErrors),
		LoadFailedUC:  usecase.NewHandleLoadFailedUseCase(cfg.StartURL, started.pages),
		PopupPolicy:   usecase.NewPopupPolicy(cfg.AllowPopups, authUC),
		ResetUC:       usecase.NewResetSessionUseCase(started.journal, app.Manager),
	}
	if started.inhibitor != nil {
		deps.IdleInhibitor = started.inhibitor
	}
	if sink := app.SessionLog(); sink != nil {
		deps.SessionLog = sink
	}

	kiosk, err := ui.New(deps)
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	setupSignalHandler(ctx, kiosk)

	// GTK only sees the program name; flags were consumed by cobra.
	return kiosk.Run(ctx, os.Args[:1])
}

// runParallelInit opens the journal, connects to the inhibit portal and
// parses the error page templates concurrently.
func runParallelInit(ctx context.Context, app *cli.App) (*startupResult, error) {
	log := logging.FromContext(ctx)
	cfg := app.Config
	result := &startupResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		journal, err := app.OpenJournal(gctx)
		switch {
		case errors.Is(err, cli.ErrJournalDisabled):
			log.Debug().Msg("session journal disabled")
			return nil
		case err != nil:
			// Sessions still reset without a journal.
			log.Warn().Err(err).Msg("session journal unavailable")
			return nil
		}
		result.journal = journal
		return nil
	})

	if cfg.InhibitScreensaver {
		g.Go(func() error {
			result.inhibitor = idle.NewPortalInhibitor(gctx, false)
			return nil
		})
	}

	g.Go(func() error {
		pages, err := errorpage.New(cfg.SupportContact)
		if err != nil {
			return err
		}
		result.pages = pages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received signal, quitting")
		app.QuitFromSignal()
	}()
}
