// Package config loads the preset catalog and platform selection shared by the
// demo commands.
//
// Sources, lowest precedence first:
//   - built-in defaults (gaming + office presets, MacOS then Windows)
//   - a YAML file (path from the caller, or CREATIONAL_CONFIG)
//   - CREATIONAL_PLATFORMS / CREATIONAL_VERBOSE
//
// Command-line flags are applied by the commands on top of the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/creational/builder"
	"github.com/sghaida/creational/uifactory"
)

// Environment variables read by FromEnv.
const (
	EnvConfig    = "CREATIONAL_CONFIG"
	EnvPlatforms = "CREATIONAL_PLATFORMS"
	EnvVerbose   = "CREATIONAL_VERBOSE"
)

// ErrNoPlatforms is returned when the platform list is empty, either from YAML
// (platforms: []) or from a CREATIONAL_PLATFORMS value holding only separators.
var ErrNoPlatforms = errors.New("config: no platforms")

type Config struct {
	// Presets are merged over the built-in catalog. A preset named like a
	// built-in replaces it in place.
	Presets []builder.Preset `yaml:"presets"`

	// Platforms lists the widget families to showcase, in order.
	Platforms []string `yaml:"platforms"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Platforms: []string{uifactory.MacOS.String(), uifactory.Windows.String()},
	}
}

// Parse decodes a YAML document over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// FromEnv loads path (or CREATIONAL_CONFIG when path is empty, or Default when
// both are empty) and applies the environment overrides.
func FromEnv(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvPlatforms); v != "" {
		cfg.Platforms = splitList(v)
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that presets can be catalogued and platforms are known.
func (c Config) Validate() error {
	if _, err := c.Catalog(); err != nil {
		return err
	}
	if _, err := c.PlatformList(); err != nil {
		return err
	}
	return nil
}

// Catalog returns the built-in presets with c.Presets merged over them.
func (c Config) Catalog() (*builder.Catalog, error) {
	catalog := builder.DefaultCatalog()
	seen := make(map[string]struct{}, len(c.Presets))
	for _, p := range c.Presets {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("config: %w", builder.DuplicatePresetError{Name: p.Name})
		}
		seen[p.Name] = struct{}{}
		if err := catalog.Put(p); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return catalog, nil
}

// PlatformList parses c.Platforms. An empty list is ErrNoPlatforms.
func (c Config) PlatformList() ([]uifactory.Platform, error) {
	if len(c.Platforms) == 0 {
		return nil, ErrNoPlatforms
	}
	out := make([]uifactory.Platform, 0, len(c.Platforms))
	for _, name := range c.Platforms {
		p, err := uifactory.ParsePlatform(name)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
