package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName = "kiosk"

	DefaultStartURL = "about:blank"

	ColorSchemeDefault = "default"
	ColorSchemeLight   = "light"
	ColorSchemeDark    = "dark"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		StartURL:           DefaultStartURL,
		Timeout:            0,
		ZoomFactor:         1.0,
		Navigation:         true,
		ColorScheme:        ColorSchemeDefault,
		InhibitScreensaver: true,
		Journal: JournalConfig{
			Enabled: true,
			Path:    DefaultJournalPath(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultSearchPaths lists config files in lookup order: per-user first,
// then system-wide.
func DefaultSearchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
		filepath.Join(xdg.Home, "."+appName+".yaml"),
		filepath.Join("/etc", appName+".yaml"),
	}
}

// UserConfigFile is where `kiosk config init` writes.
func UserConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultJournalPath returns the session journal database location.
func DefaultJournalPath() string {
	return filepath.Join(xdg.StateHome, appName, "journal.db")
}
