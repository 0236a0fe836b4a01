// Package cli wires the kiosk's command line: flags, config loading and the
// non-graphical subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/cli/styles"
	"github.com/bnema/kiosk/internal/domain/build"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kiosk/internal/logging"
)

// App holds dependencies shared by every command.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	journal    *sqlite.LazyJournal
	ctx        context.Context
	sessionLog *logging.SessionLog
}

// NewApp loads config and builds the logger. Config problems are logged as
// warnings and never fail startup.
func NewApp(opts config.LoadOptions) (*App, error) {
	mgr := config.NewManager(opts)

	// Warnings are logged again once the configured logger exists.
	bootstrap := logging.WithContext(context.Background(), logging.NewFromConfigValues("error", "console"))
	if err := mgr.Load(bootstrap); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, sessionLog, err := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: log directory unusable, logging to stderr only: %v\n", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	for _, w := range mgr.Warnings() {
		logger.Warn().Str("file", mgr.GetConfigFile()).Msg(w)
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		sessionLog: sessionLog,
	}, nil
}

// Journal returns the session journal. The database is opened by the first
// call that reads or writes it.
func (a *App) Journal() (port.SessionJournal, error) {
	if !a.Config.Journal.Enabled {
		return nil, ErrJournalDisabled
	}
	if a.journal == nil {
		a.journal = sqlite.NewLazyJournal(a.Config.Journal.Path)
	}
	return a.journal, nil
}

// OpenJournal opens the journal database now. The browser calls it during
// startup so a broken journal is noticed before the first reset.
func (a *App) OpenJournal(ctx context.Context) (port.SessionJournal, error) {
	journal, err := a.Journal()
	if err != nil {
		return nil, err
	}
	if err := a.journal.Open(ctx); err != nil {
		return nil, err
	}
	return journal, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.journal != nil {
		err = a.journal.Close()
		a.journal = nil
	}
	if a.sessionLog != nil {
		_ = a.sessionLog.Close()
	}
	return err
}

// SessionLog returns the per-session log file sink, or nil when
// logging.dir is unset.
func (a *App) SessionLog() *logging.SessionLog {
	return a.sessionLog
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ErrJournalDisabled is returned when journal.enabled is false.
var ErrJournalDisabled = fmt.Errorf("session journal is disabled (journal.enabled: false)")
