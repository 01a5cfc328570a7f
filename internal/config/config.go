// Package config loads the optional sdrft.toml at the repository root.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/openproteomics/sdrf-templates/internal/manifest"
	"github.com/openproteomics/sdrf-templates/internal/messages"
)

// FileName is the tool configuration file at the repository root.
const FileName = "sdrft.toml"

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers use
// errors.Is(err, ErrConfigValidation) to distinguish them.
var ErrConfigValidation = errors.New("config validation failed")

// Config is the parsed sdrft.toml.
type Config struct {
	Manifest  ManifestConfig  `toml:"manifest"`
	Discovery DiscoveryConfig `toml:"discovery"`
}

// ManifestConfig controls the generated manifest location.
type ManifestConfig struct {
	// File is the manifest file name at the repository root.
	File string `toml:"file"`
}

// DiscoveryConfig controls which top-level directories are skipped.
type DiscoveryConfig struct {
	// Ignore lists top-level directory names that are not templates.
	Ignore []string `toml:"ignore"`
}

// Default returns the configuration used when no sdrft.toml exists.
func Default() *Config {
	return &Config{
		Manifest:  ManifestConfig{File: manifest.DefaultFileName},
		Discovery: DiscoveryConfig{Ignore: []string{"scripts", "docs"}},
	}
}

// Load reads sdrft.toml from the repository root. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data. source is used in error
// messages. Unset fields fall back to the defaults.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes the TOML data with unknown-field rejection, which
// catches keys toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate ensures the config is usable.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Manifest.File) == "" {
		return fmt.Errorf(messages.ConfigManifestFileEmpty, source)
	}
	if filepath.Base(c.Manifest.File) != c.Manifest.File {
		return fmt.Errorf(messages.ConfigManifestFileNested, source)
	}
	for i, name := range c.Discovery.Ignore {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(messages.ConfigIgnoreEmptyEntryFmt, source, i)
		}
	}
	return nil
}

// ManifestPath returns the absolute manifest path under root.
func (c *Config) ManifestPath(root string) string {
	return filepath.Join(root, c.Manifest.File)
}
