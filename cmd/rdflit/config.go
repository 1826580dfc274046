package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/damedic/rdf-toolbox-go/storage"
	"github.com/damedic/rdf-toolbox-go/storage/sqlite"
	"gopkg.in/yaml.v3"
)

// Config is the content of the YAML configuration file.
type Config struct {
	// DecimalPrecision is the number of significant digits of decimal division.
	DecimalPrecision uint32        `yaml:"decimalPrecision"`
	Storage          StorageConfig `yaml:"storage"`
	Log              LogConfig     `yaml:"log"`
}

// StorageConfig selects the literal backend.
type StorageConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver"`
	// Path is the database file of the sqlite driver.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig is used for settings missing from the configuration file.
var DefaultConfig = Config{
	DecimalPrecision: 34,
	Storage:          StorageConfig{Driver: "memory"},
	Log:              LogConfig{Level: "warn"},
}

// LoadConfig reads the configuration file at path. An empty path yields the
// default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.DecimalPrecision == 0 {
		return Config{}, fmt.Errorf("parse config %s: decimalPrecision must be positive", path)
	}
	return cfg, nil
}

// OpenStorage opens the configured backend. The returned function releases it.
func (c Config) OpenStorage() (storage.Storage, func() error, error) {
	switch c.Storage.Driver {
	case "", "memory":
		return storage.NewMemory(), func() error { return nil }, nil
	case "sqlite":
		if c.Storage.Path == "" {
			return nil, nil, fmt.Errorf("storage path is required for the sqlite driver")
		}
		s, err := sqlite.Open(c.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
