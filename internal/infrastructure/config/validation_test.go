package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, normalizeConfig(cfg))
}

func TestNormalizeConfig_RepairsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "negative timeout disables watchdog",
			mutate: func(c *Config) { c.Timeout = -5 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0, c.Timeout) },
		},
		{
			name:   "zero zoom resets to default",
			mutate: func(c *Config) { c.ZoomFactor = 0 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1.0, c.ZoomFactor) },
		},
		{
			name:   "nan zoom resets to default",
			mutate: func(c *Config) { c.ZoomFactor = math.NaN() },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1.0, c.ZoomFactor) },
		},
		{
			name:   "huge zoom clamps to max",
			mutate: func(c *Config) { c.ZoomFactor = 7.5 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 3.0, c.ZoomFactor) },
		},
		{
			name:   "tiny zoom clamps to min",
			mutate: func(c *Config) { c.ZoomFactor = 0.05 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0.1, c.ZoomFactor) },
		},
		{
			name:   "relative start url replaced",
			mutate: func(c *Config) { c.StartURL = "www.example.org" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, DefaultStartURL, c.StartURL) },
		},
		{
			name:   "negative auth attempts means unlimited",
			mutate: func(c *Config) { c.AuthMaxAttempts = -1 },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0, c.AuthMaxAttempts) },
		},
		{
			name:   "unknown color scheme follows desktop",
			mutate: func(c *Config) { c.ColorScheme = "solarized" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, ColorSchemeDefault, c.ColorScheme) },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "chatty" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "info", c.Logging.Level) },
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "console", c.Logging.Format) },
		},
		{
			name:   "password without user",
			mutate: func(c *Config) { c.DefaultPassword = "pw" },
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "pw", c.DefaultPassword) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			warnings := normalizeConfig(cfg)
			require.Len(t, warnings, 1)
			tt.check(t, cfg)
		})
	}
}

func TestNormalizeConfig_EmptyStartURLIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartURL = "  "
	assert.Empty(t, normalizeConfig(cfg))
	assert.Equal(t, DefaultStartURL, cfg.StartURL)
}

func TestNormalizeConfig_DropsBadBookmarks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bookmarks = Bookmarks{
		{Label: "Good", URL: " https://good.example.org "},
		{Label: "NoScheme", URL: "example.org"},
		{Label: "Empty", URL: ""},
		{Label: "Good", URL: "https://dup.example.org"},
		{Label: "Also", URL: "https://also.example.org"},
	}

	warnings := normalizeConfig(cfg)
	assert.Len(t, warnings, 3)
	require.Len(t, cfg.Bookmarks, 2)
	assert.Equal(t, "https://good.example.org", cfg.Bookmarks[0].URL)
	assert.Equal(t, "Also", cfg.Bookmarks[1].Label)
}

func TestNormalizeConfig_JournalPathFilledWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Journal.Path = ""
	normalizeConfig(cfg)
	assert.Equal(t, DefaultJournalPath(), cfg.Journal.Path)
}
