package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiosk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func ptr[T any](v T) *T { return &v }

const sampleConfig = `
start_url: https://catalog.example.org/
timeout: 120
zoom_factor: 1.3
allow_popups: true
navigation: true
icon_theme: Adwaita
default_user: patron
default_password: secret
bookmarks:
  Zebra:
    url: https://zebra.example.org
    description: Animals
  Alpha:
    url: https://alpha.example.org
  Middle:
    url: https://middle.example.org
    description: In between
`

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{ExplicitPath: path})

	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.Equal(t, "https://catalog.example.org/", cfg.StartURL)
	assert.Equal(t, 120, cfg.Timeout)
	assert.InDelta(t, 1.3, cfg.ZoomFactor, 1e-9)
	assert.True(t, cfg.AllowPopups)
	assert.False(t, cfg.Fullscreen)
	assert.Equal(t, "Adwaita", cfg.IconTheme)
	assert.Equal(t, "patron", cfg.DefaultUser)
	assert.Equal(t, path, m.GetConfigFile())
	assert.Empty(t, m.Warnings())
}

func TestLoad_BookmarksKeepFileOrderAndCase(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{ExplicitPath: path})
	require.NoError(t, m.Load(testContext()))

	bookmarks := m.Get().Bookmarks
	require.Len(t, bookmarks, 3)
	assert.Equal(t, "Zebra", bookmarks[0].Label)
	assert.Equal(t, "Alpha", bookmarks[1].Label)
	assert.Equal(t, "Middle", bookmarks[2].Label)
	assert.Equal(t, "Animals", bookmarks[0].Description)
	assert.Equal(t, "https://alpha.example.org", bookmarks[1].URL)
}

func TestLoad_CommandLineWinsOverFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{
		ExplicitPath: path,
		Overrides: Overrides{
			StartURL:    ptr("https://override.example.org/"),
			Timeout:     ptr(0),
			ZoomFactor:  ptr(2.0),
			AllowPopups: ptr(false),
			Fullscreen:  ptr(true),
			Navigation:  ptr(false),
			DefaultUser: ptr("staff"),
			Debug:       true,
		},
	})
	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.Equal(t, "https://override.example.org/", cfg.StartURL)
	assert.Equal(t, 0, cfg.Timeout)
	assert.Equal(t, 2.0, cfg.ZoomFactor)
	assert.False(t, cfg.AllowPopups)
	assert.True(t, cfg.Fullscreen)
	assert.False(t, cfg.Navigation)
	assert.Equal(t, "staff", cfg.DefaultUser)
	assert.Equal(t, "secret", cfg.DefaultPassword)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FileWinsOverDefaults(t *testing.T) {
	path := writeConfig(t, "navigation: false\n")
	m := NewManager(LoadOptions{ExplicitPath: path})
	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.False(t, cfg.Navigation)
	assert.Equal(t, DefaultStartURL, cfg.StartURL)
	assert.Equal(t, 1.0, cfg.ZoomFactor)
	assert.True(t, cfg.InhibitScreensaver)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	m := NewManager(LoadOptions{SearchPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}})
	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.Equal(t, DefaultStartURL, cfg.StartURL)
	assert.Equal(t, 0, cfg.Timeout)
	assert.True(t, cfg.Navigation)
	assert.Empty(t, cfg.Bookmarks)
	assert.Empty(t, m.GetConfigFile())
	assert.Empty(t, m.Warnings())
}

func TestLoad_SearchOrderPrefersUserFile(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.yaml")
	system := filepath.Join(dir, "system.yaml")
	require.NoError(t, os.WriteFile(user, []byte("start_url: https://user.example.org/\n"), 0o600))
	require.NoError(t, os.WriteFile(system, []byte("start_url: https://system.example.org/\n"), 0o600))

	m := NewManager(LoadOptions{SearchPaths: []string{user, system}})
	require.NoError(t, m.Load(testContext()))
	assert.Equal(t, "https://user.example.org/", m.Get().StartURL)

	require.NoError(t, os.Remove(user))
	require.NoError(t, m.Load(testContext()))
	assert.Equal(t, "https://system.example.org/", m.Get().StartURL)
}

func TestLoad_MissingExplicitFileWarnsAndFallsBack(t *testing.T) {
	m := NewManager(LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
		Overrides:    Overrides{StartURL: ptr("https://cli.example.org/")},
	})
	require.NoError(t, m.Load(testContext()))

	assert.Equal(t, "https://cli.example.org/", m.Get().StartURL)
	require.Len(t, m.Warnings(), 1)
	assert.Contains(t, m.Warnings()[0], "using defaults")
}

func TestLoad_UnparseableFileWarnsAndFallsBack(t *testing.T) {
	path := writeConfig(t, "start_url: [unterminated\n")
	m := NewManager(LoadOptions{ExplicitPath: path, Overrides: Overrides{Timeout: ptr(30)}})
	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.Equal(t, DefaultStartURL, cfg.StartURL)
	assert.Equal(t, 30, cfg.Timeout)
	assert.Empty(t, m.GetConfigFile())
	require.NotEmpty(t, m.Warnings())
	assert.Contains(t, m.Warnings()[0], "not valid YAML")
}

func TestLoad_EnvironmentBetweenFileAndCommandLine(t *testing.T) {
	path := writeConfig(t, "timeout: 60\nstart_url: https://file.example.org/\n")
	t.Setenv("KIOSK_TIMEOUT", "90")
	t.Setenv("KIOSK_START_URL", "https://env.example.org/")

	m := NewManager(LoadOptions{ExplicitPath: path, Overrides: Overrides{Timeout: ptr(15)}})
	require.NoError(t, m.Load(testContext()))
	cfg := m.Get()

	assert.Equal(t, 15, cfg.Timeout)
	assert.Equal(t, "https://env.example.org/", cfg.StartURL)
}

func TestBookmarks_RereadsFileOnEachCall(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{ExplicitPath: path})
	require.NoError(t, m.Load(testContext()))

	require.NoError(t, os.WriteFile(path, []byte(`
start_url: https://ignored.example.org/
bookmarks:
  Only:
    url: https://only.example.org
  Broken:
    url: not-a-url
`), 0o600))

	bookmarks, err := m.Bookmarks(testContext())
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "Only", bookmarks[0].Label)

	// Settings other than bookmarks are fixed for the run.
	assert.Equal(t, "https://catalog.example.org/", m.Get().StartURL)
}

func TestBookmarks_BrokenFileReturnsError(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{ExplicitPath: path})
	require.NoError(t, m.Load(testContext()))

	require.NoError(t, os.WriteFile(path, []byte("bookmarks: [1, 2\n"), 0o600))

	_, err := m.Bookmarks(testContext())
	assert.Error(t, err)
	assert.Len(t, m.Get().Bookmarks, 3)
}

func TestBookmarks_NoFileReturnsEmpty(t *testing.T) {
	m := NewManager(LoadOptions{SearchPaths: []string{}})
	require.NoError(t, m.Load(testContext()))

	bookmarks, err := m.Bookmarks(testContext())
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	m := NewManager(LoadOptions{ExplicitPath: path})
	require.NoError(t, m.Load(testContext()))

	cfg := m.Get()
	cfg.StartURL = "mutated"
	cfg.Bookmarks[0].Label = "mutated"

	assert.Equal(t, "https://catalog.example.org/", m.Get().StartURL)
	assert.Equal(t, "Zebra", m.Get().Bookmarks[0].Label)
}
