package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/pipelog/core"
	"github.com/philipp01105/pipelog/logger"
)

// Format represents the configuration file format
type Format int

const (
	// FormatJSON represents JSON format
	FormatJSON Format = iota
	// FormatYAML represents YAML format
	FormatYAML
	// FormatTOML represents TOML format
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath detects the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: unsupported config file extension %q", core.ErrConfiguration, filepath.Ext(path))
	}
}

// Load reads a logger configuration from path. The format is chosen by
// file extension.
func Load(path string) (logger.Config, error) {
	if strings.TrimSpace(path) == "" {
		return logger.Config{}, fmt.Errorf("%w: config file path cannot be empty", core.ErrConfiguration)
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return logger.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Config{}, fmt.Errorf("%w: %w", core.ErrConfiguration, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return logger.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a logger configuration. Unknown keys are rejected.
func Parse(data []byte, format Format) (logger.Config, error) {
	var cfg logger.Config

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return logger.Config{}, fmt.Errorf("%w: invalid JSON: %w", core.ErrConfiguration, err)
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return logger.Config{}, fmt.Errorf("%w: invalid YAML: %w", core.ErrConfiguration, err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return logger.Config{}, fmt.Errorf("%w: invalid TOML: %w", core.ErrConfiguration, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return logger.Config{}, fmt.Errorf("%w: unknown TOML keys: %s", core.ErrConfiguration, strings.Join(keys, ", "))
		}

	default:
		return logger.Config{}, fmt.Errorf("%w: unknown format %s", core.ErrConfiguration, format)
	}

	return cfg, nil
}

// Build loads path, applies environment overrides and builds the logger
// into the global registry.
func Build(path string) (*logger.Logger, error) {
	return BuildInto(logger.Global(), path)
}

// BuildInto is Build for an explicit registry
func BuildInto(r *logger.Registry, path string) (*logger.Logger, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	return r.FromConfig(cfg)
}
