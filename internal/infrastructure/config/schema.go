package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for the kiosk.
type Config struct {
	// StartURL is loaded at startup and after every reset.
	StartURL string `mapstructure:"start_url" yaml:"start_url" toml:"start_url" jsonschema:"default=about:blank"`
	// Timeout is the inactivity window in seconds before the kiosk resets. 0 disables it.
	Timeout int `mapstructure:"timeout" yaml:"timeout" toml:"timeout" jsonschema:"minimum=0"`
	// ZoomFactor is the initial page zoom (1.0 = 100%).
	ZoomFactor float64 `mapstructure:"zoom_factor" yaml:"zoom_factor" toml:"zoom_factor" jsonschema:"minimum=0.1,maximum=3"`
	// AllowPopups lets pages open new top-level windows.
	AllowPopups bool `mapstructure:"allow_popups" yaml:"allow_popups" toml:"allow_popups"`
	Fullscreen  bool `mapstructure:"fullscreen" yaml:"fullscreen" toml:"fullscreen"`
	// Navigation shows the toolbar.
	Navigation bool `mapstructure:"navigation" yaml:"navigation" toml:"navigation" jsonschema:"default=true"`
	// IconTheme overrides the GTK icon theme used by the toolbar.
	IconTheme string `mapstructure:"icon_theme" yaml:"icon_theme,omitempty" toml:"icon_theme,omitempty"`
	// ColorScheme picks the toolbar palette. "default" follows the desktop.
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" jsonschema:"enum=default,enum=light,enum=dark"`
	// DefaultUser and DefaultPassword answer every HTTP authentication challenge.
	DefaultUser     string `mapstructure:"default_user" yaml:"default_user,omitempty" toml:"default_user,omitempty"`
	DefaultPassword string `mapstructure:"default_password" yaml:"default_password,omitempty" toml:"default_password,omitempty"`
	// AuthMaxAttempts caps how often rejected default credentials are resent to a host. 0 means no cap.
	AuthMaxAttempts int `mapstructure:"auth_max_attempts" yaml:"auth_max_attempts" toml:"auth_max_attempts" jsonschema:"minimum=0"`
	// IgnoreCertificateErrors accepts invalid TLS certificates. Disables certificate validation.
	IgnoreCertificateErrors bool `mapstructure:"ignore_certificate_errors" yaml:"ignore_certificate_errors" toml:"ignore_certificate_errors"`
	// InhibitScreensaver keeps the display awake while the kiosk runs.
	InhibitScreensaver bool `mapstructure:"inhibit_screensaver" yaml:"inhibit_screensaver" toml:"inhibit_screensaver" jsonschema:"default=true"`
	// SupportContact is appended to the network error page.
	SupportContact string `mapstructure:"support_contact" yaml:"support_contact,omitempty" toml:"support_contact,omitempty"`
	// Bookmarks are read from the file in order, keyed by label.
	Bookmarks Bookmarks     `mapstructure:"-" yaml:"bookmarks,omitempty" toml:"bookmarks,omitempty"`
	Journal   JournalConfig `mapstructure:"journal" yaml:"journal" toml:"journal"`
	Logging   LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// JournalConfig controls the local session journal.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled" jsonschema:"default=true"`
	Path    string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// Dir, when set, also writes JSON logs to rotated files in this directory.
	Dir string `mapstructure:"dir" yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// BookmarkEntry is one toolbar bookmark.
type BookmarkEntry struct {
	Label       string `yaml:"-" toml:"label" jsonschema:"-"`
	URL         string `yaml:"url" toml:"url" jsonschema:"required"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
}

// Bookmarks keeps file order, which viper maps lose.
type Bookmarks []BookmarkEntry

// JSONSchema describes bookmarks as a mapping from label to entry.
func (Bookmarks) JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true, FieldNameTag: "yaml"}
	entry := r.Reflect(&BookmarkEntry{})
	entry.Version = ""
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Toolbar bookmarks keyed by button label, in display order",
		AdditionalProperties: entry,
	}
}

// Schema generates the JSON schema of the config file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{FieldNameTag: "yaml", RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/kiosk/config.schema.json"
	schema.Title = "Kiosk Browser Configuration"
	schema.Description = "Configuration schema for kiosk, a locked-down browser for public terminals"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
