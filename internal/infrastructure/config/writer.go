package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const redacted = "********"

// Format names an output encoding for Encode.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Redacted returns a copy of cfg with secrets masked.
func Redacted(cfg *Config) *Config {
	out := *cfg
	if out.DefaultPassword != "" {
		out.DefaultPassword = redacted
	}
	return &out
}

// Encode renders cfg in the requested format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode config as yaml: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode config as toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or toml)", format)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories. An existing file is replaced only when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Bookmarks = Bookmarks{
		{Label: "Home", URL: "https://example.org/", Description: "Return to the home page"},
	}
	data, err := Encode(cfg, FormatYAML)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
