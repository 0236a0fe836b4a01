package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// normalizeConfig repairs out-of-range values in place and returns one
// warning per repair. Nothing here is fatal: a kiosk must come up even with
// a broken config file.
func normalizeConfig(config *Config) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	config.StartURL = strings.TrimSpace(config.StartURL)
	if config.StartURL == "" {
		config.StartURL = DefaultStartURL
	} else if !entity.IsNavigableURL(config.StartURL) {
		warn("start_url %q is not an absolute URL, using %s", config.StartURL, DefaultStartURL)
		config.StartURL = DefaultStartURL
	}

	if config.Timeout < 0 {
		warn("timeout must be >= 0 (got %d), inactivity reset disabled", config.Timeout)
		config.Timeout = 0
	}

	switch {
	case math.IsNaN(config.ZoomFactor) || math.IsInf(config.ZoomFactor, 0) || config.ZoomFactor <= 0:
		warn("zoom_factor must be > 0 (got %v), using %.1f", config.ZoomFactor, entity.ZoomDefault)
		config.ZoomFactor = entity.ZoomDefault
	case config.ZoomFactor < entity.ZoomMin || config.ZoomFactor > entity.ZoomMax:
		clamped := entity.ClampZoom(config.ZoomFactor)
		warn("zoom_factor %v outside [%.1f, %.1f], using %.1f",
			config.ZoomFactor, entity.ZoomMin, entity.ZoomMax, clamped)
		config.ZoomFactor = clamped
	}

	if config.AuthMaxAttempts < 0 {
		warn("auth_max_attempts must be >= 0 (got %d), using unlimited", config.AuthMaxAttempts)
		config.AuthMaxAttempts = 0
	}

	if config.DefaultPassword != "" && config.DefaultUser == "" {
		warn("default_password is set without default_user and will not be used")
	}

	config.ColorScheme = strings.ToLower(strings.TrimSpace(config.ColorScheme))
	switch config.ColorScheme {
	case ColorSchemeDefault, ColorSchemeLight, ColorSchemeDark:
	case "":
		config.ColorScheme = ColorSchemeDefault
	default:
		warn("color_scheme %q is unknown, following the desktop", config.ColorScheme)
		config.ColorScheme = ColorSchemeDefault
	}

	config.Bookmarks = normalizeBookmarks(config.Bookmarks, warn)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if !logging.ValidLevel(config.Logging.Level) {
		warn("logging.level %q is unknown, using info", config.Logging.Level)
		config.Logging.Level = "info"
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		warn("logging.format %q is unknown, using console", config.Logging.Format)
		config.Logging.Format = "console"
	}

	if config.Journal.Enabled && strings.TrimSpace(config.Journal.Path) == "" {
		config.Journal.Path = DefaultJournalPath()
	}

	return warnings
}

// normalizeBookmarks drops entries that cannot become toolbar buttons.
func normalizeBookmarks(in Bookmarks, warn func(string, ...any)) Bookmarks {
	if len(in) == 0 {
		return in
	}
	out := make(Bookmarks, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, b := range in {
		b.URL = strings.TrimSpace(b.URL)
		if err := (entity.Bookmark{Label: b.Label, URL: b.URL}).Validate(); err != nil {
			warn("bookmark skipped: %v", err)
			continue
		}
		if seen[b.Label] {
			warn("bookmark %q defined twice, keeping the first", b.Label)
			continue
		}
		seen[b.Label] = true
		out = append(out, b)
	}
	return out
}
