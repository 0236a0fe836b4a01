package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// ErrNoConfigFile is reported when no candidate config file exists.
var ErrNoConfigFile = errors.New("no config file found")

// LoadOptions selects the config file and command line overrides.
type LoadOptions struct {
	// ExplicitPath is the -c/--config-file value. When set, no other
	// location is searched.
	ExplicitPath string
	// SearchPaths replaces DefaultSearchPaths when non-nil.
	SearchPaths []string
	Overrides   Overrides
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	opts      LoadOptions
	config    *Config
	viper     *viper.Viper
	path      string
	warnings  []string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

var _ port.BookmarkSource = (*Manager)(nil)

// NewManager creates a new configuration manager.
func NewManager(opts LoadOptions) *Manager {
	return &Manager{
		opts:      opts,
		callbacks: make([]func(*Config), 0),
	}
}

// Load builds the effective configuration: command line values win over the
// file, which wins over defaults. Environment variables prefixed KIOSK_ sit
// between the file and the command line. A missing or broken file is
// recorded as a warning and the defaults are used instead.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := logging.FromContext(ctx)

	v := newViper()
	m.warnings = nil
	m.path = ""

	var bookmarks Bookmarks
	path, err := m.resolvePath()
	switch {
	case errors.Is(err, ErrNoConfigFile):
		log.Info().Msg("no config file found, using defaults")
	case err != nil:
		m.warnings = append(m.warnings, err.Error())
	default:
		data, readErr := m.readFile(v, path)
		if readErr != nil {
			m.warnings = append(m.warnings, readErr.Error())
			v = newViper()
			break
		}
		m.path = path
		bookmarks, err = parseBookmarks(data)
		if err != nil {
			m.warnings = append(m.warnings, fmt.Sprintf("bookmarks ignored: %v", err))
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		m.warnings = append(m.warnings, fmt.Sprintf("config values ignored: %v", err))
		cfg = DefaultConfig()
	}
	cfg.Bookmarks = bookmarks
	m.opts.Overrides.apply(cfg)
	m.warnings = append(m.warnings, normalizeConfig(cfg)...)

	m.viper = v
	m.config = cfg
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

// setDefaults registers every key so Unmarshal and AutomaticEnv see them.
func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("start_url", defaults.StartURL)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("zoom_factor", defaults.ZoomFactor)
	v.SetDefault("allow_popups", defaults.AllowPopups)
	v.SetDefault("fullscreen", defaults.Fullscreen)
	v.SetDefault("navigation", defaults.Navigation)
	v.SetDefault("icon_theme", defaults.IconTheme)
	v.SetDefault("color_scheme", defaults.ColorScheme)
	v.SetDefault("default_user", defaults.DefaultUser)
	v.SetDefault("default_password", defaults.DefaultPassword)
	v.SetDefault("auth_max_attempts", defaults.AuthMaxAttempts)
	v.SetDefault("ignore_certificate_errors", defaults.IgnoreCertificateErrors)
	v.SetDefault("inhibit_screensaver", defaults.InhibitScreensaver)
	v.SetDefault("support_contact", defaults.SupportContact)
	v.SetDefault("journal.enabled", defaults.Journal.Enabled)
	v.SetDefault("journal.path", defaults.Journal.Path)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// resolvePath returns the first config file candidate that exists.
func (m *Manager) resolvePath() (string, error) {
	if m.opts.ExplicitPath != "" {
		if _, err := os.Stat(m.opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s unusable, using defaults: %w", m.opts.ExplicitPath, err)
		}
		return m.opts.ExplicitPath, nil
	}

	candidates := m.opts.SearchPaths
	if candidates == nil {
		candidates = DefaultSearchPaths()
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrNoConfigFile
}

// ResolvePath reports which file Load would use.
func (m *Manager) ResolvePath() (string, error) {
	return m.resolvePath()
}

func (*Manager) readFile(v *viper.Viper, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("config file %s is not readable, using defaults: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file %s, using defaults: %w", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("config file %s is not valid YAML, using defaults: %w", path, err)
	}
	return data, nil
}

// Get returns a copy of the effective configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Bookmarks = slices.Clone(m.config.Bookmarks)
	return &configCopy
}

// Warnings lists every problem found during the last Load.
func (m *Manager) Warnings() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.warnings)
}

// GetConfigFile returns the path of the file in use, or "" for defaults.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Bookmarks re-reads bookmarks from the config file. Other settings keep
// the values from startup.
func (m *Manager) Bookmarks(ctx context.Context) ([]entity.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.reloadBookmarks(ctx); err != nil {
		return nil, err
	}
	return m.config.Bookmarks.Entities(), nil
}

// reloadBookmarks must be called with m.mu held for write.
func (m *Manager) reloadBookmarks(ctx context.Context) error {
	if m.config == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if m.path == "" {
		return nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to re-read %s: %w", m.path, err)
	}
	bookmarks, err := parseBookmarks(data)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	bookmarks = normalizeBookmarks(bookmarks, func(format string, args ...any) {
		log.Warn().Msgf(format, args...)
	})
	m.config.Bookmarks = bookmarks
	log.Debug().Int("count", len(bookmarks)).Str("file", m.path).Msg("bookmarks reloaded")
	return nil
}
