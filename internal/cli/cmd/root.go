// Package cmd provides Cobra CLI commands for kiosk.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/kiosk/internal/cli"
	"github.com/bnema/kiosk/internal/domain/build"
	"github.com/bnema/kiosk/internal/infrastructure/config"
)

// BrowseFunc runs the graphical kiosk and returns the process exit code.
type BrowseFunc func(app *cli.App) int

var (
	app       *cli.App
	buildInfo build.Info
	browse    BrowseFunc
	flags     rootFlags
	exitCode  int

	rootCmd = &cobra.Command{
		Use:   "kiosk",
		Short: "A locked-down web browser for public terminals",
		Long: `Kiosk - a single-window browser for public access terminals.

It shows one start page, an optional toolbar with navigation, zoom and
bookmark buttons, and an "I'm Finished" button. Pressing it, or leaving the
terminal idle for the configured timeout, wipes the browsing session and
returns to the start page.

Settings come from flags, KIOSK_* environment variables and a YAML file
(~/.config/kiosk/config.yaml, ~/.kiosk.yaml or /etc/kiosk.yaml). Flags win.
Press Ctrl+Alt+Q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(flags.loadOptions(cmd.Flags()))
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if browse == nil {
				return errors.New("graphical mode is not available in this build")
			}
			exitCode = browse(app)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// rootFlags are the browser options. Only flags the user actually set
// override the config file.
type rootFlags struct {
	url          string
	configFile   string
	iconTheme    string
	user         string
	password     string
	fullscreen   bool
	noNavigation bool
	debug        bool
	popups       bool
	ignoreCert   bool
	timeout      int
	zoom         float64
}

func (f *rootFlags) register(local, persistent *pflag.FlagSet) {
	persistent.StringVarP(&f.configFile, "config-file", "c", "", "read settings from this file only")
	persistent.BoolVarP(&f.debug, "debug", "d", false, "log at debug level")

	local.StringVarP(&f.url, "url", "l", "", "start page, loaded at startup and after every reset")
	local.BoolVarP(&f.fullscreen, "fullscreen", "f", false, "start fullscreen")
	local.BoolVarP(&f.noNavigation, "no-navigation", "n", false, "hide the toolbar")
	local.IntVarP(&f.timeout, "timeout", "t", 0, "reset after this many idle seconds (0 keeps the config file value)")
	local.StringVarP(&f.iconTheme, "icon-theme", "i", "", "GTK icon theme for the toolbar")
	local.Float64VarP(&f.zoom, "zoom", "z", 1.0, "initial zoom factor")
	local.BoolVarP(&f.popups, "popups", "p", false, "allow pages to open new windows")
	local.StringVarP(&f.user, "user", "u", "", "user name sent to every HTTP authentication request")
	local.StringVarP(&f.password, "password", "w", "", "password sent with --user")
	local.BoolVar(&f.ignoreCert, "ignore-cert-errors", false, "accept invalid TLS certificates")
}

func (f *rootFlags) loadOptions(fs *pflag.FlagSet) config.LoadOptions {
	return config.LoadOptions{
		ExplicitPath: f.configFile,
		Overrides:    f.overrides(fs),
	}
}

func (f *rootFlags) overrides(fs *pflag.FlagSet) config.Overrides {
	o := config.Overrides{Debug: f.debug}
	if fs.Changed("url") {
		o.StartURL = &f.url
	}
	if fs.Changed("fullscreen") {
		o.Fullscreen = &f.fullscreen
	}
	if fs.Changed("no-navigation") {
		nav := !f.noNavigation
		o.Navigation = &nav
	}
	// A zero timeout or zoom on the command line does not beat the file.
	if fs.Changed("timeout") && f.timeout != 0 {
		o.Timeout = &f.timeout
	}
	if fs.Changed("icon-theme") {
		o.IconTheme = &f.iconTheme
	}
	if fs.Changed("zoom") && f.zoom != 0 {
		o.ZoomFactor = &f.zoom
	}
	if fs.Changed("popups") {
		o.AllowPopups = &f.popups
	}
	if fs.Changed("user") {
		o.DefaultUser = &f.user
	}
	if fs.Changed("password") {
		o.DefaultPassword = &f.password
	}
	if fs.Changed("ignore-cert-errors") {
		o.IgnoreCertificateErrors = &f.ignoreCert
	}
	return o
}

func init() {
	flags.register(rootCmd.Flags(), rootCmd.PersistentFlags())
}

// Execute runs the root command and exits with the browser's exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBrowseFunc installs the graphical entry point (called from main.go).
func SetBrowseFunc(fn BrowseFunc) {
	browse = fn
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
