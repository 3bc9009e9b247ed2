// Package config reads and writes the cfilter configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = ".cfilter.yaml"

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColor is returned for unknown color modes.
var ErrInvalidColor = errors.New("invalid color mode")

// Config is the content of a configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Canonical sorts filters in natural order after collapsing them.
	Canonical bool      `yaml:"canonical"`
	Color     ColorMode `yaml:"color"`
	// Column is the default column used by the sql command.
	Column string `yaml:"column"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Name:      "cfilter",
		Canonical: true,
		Color:     ColorAuto,
		Column:    "value",
	}
}

// Load reads the configuration at path. A missing file yields Default.
// Fields absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields that have a fixed set of values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
}

// Write stores cfg at path, replacing any existing file.
func Write(path string, cfg Config) error {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// UseColor reports whether output written to f should be colored.
func (c Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
