package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Loader reads configuration files on top of a set of defaults.
type Loader struct {
	defaults *Config
}

// NewLoader creates a loader starting from DefaultConfig.
func NewLoader() *Loader {
	return &Loader{defaults: DefaultConfig()}
}

// SetDefaultConfig sets the configuration that file values are laid over.
func (l *Loader) SetDefaultConfig(config *Config) *Loader {
	l.defaults = config
	return l
}

// Load returns the defaults when filename is empty, otherwise the file
// laid over the defaults. The result is validated.
func (l *Loader) Load(filename string) (*Config, error) {
	if filename == "" {
		config := l.base()
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return config, nil
	}

	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer f.Close()

	config, err := l.LoadFromReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from file %s: %w", filename, err)
	}
	return config, nil
}

// LoadFromReader parses r over the defaults and validates the result.
func (l *Loader) LoadFromReader(r io.Reader, format Format) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration data: %w", err)
	}

	config := l.base()
	if err := parseConfig(data, format, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// base returns a copy of the defaults so loads never alias each other.
func (l *Loader) base() *Config {
	if l.defaults == nil {
		return DefaultConfig()
	}
	c := *l.defaults
	return &c
}

// parseConfig decodes data into config. Fields absent from data keep
// their current values.
func parseConfig(data []byte, format Format, config *Config) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return nil
}
