package rbestore

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the Build options.
//
//	layout: bitmap
//	strict_dependents: true
//	log_level: debug
//	log_format: json
type Config struct {
	Layout           Layout `yaml:"layout"`
	StrictDependents bool   `yaml:"strict_dependents"`
	// LogLevel is a slog level name (debug, info, warn, error).
	// Empty disables logging.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text (default) or json.
	LogFormat string `yaml:"log_format"`
}

// LoadConfig decodes a YAML config from r. Unknown fields are rejected.
// An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("rbestore: decode config: %w", err)
	}

	if _, err := c.logger(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("rbestore: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Options converts the config into Build options.
func (c Config) Options() ([]Option, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}

	return []Option{
		WithLayout(c.Layout),
		WithStrictDependents(c.StrictDependents),
		WithLogger(logger),
	}, nil
}

func (c Config) logger() (*Logger, error) {
	if c.LogLevel == "" {
		return NoopLogger(), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("rbestore: log_level: %w", err)
	}

	switch c.LogFormat {
	case "", "text":
		return NewTextLogger(level), nil
	case "json":
		return NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("rbestore: log_format: unsupported format %q", c.LogFormat)
	}
}
