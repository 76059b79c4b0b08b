// Package config loads the swaymon configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/miketth/swaymon/pkg/monitors"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

type Compositor string

const (
	CompositorAuto     Compositor = "auto"
	CompositorSway     Compositor = "sway"
	CompositorHyprland Compositor = "hyprland"
)

type Config struct {
	Compositor Compositor `yaml:"compositor"`
	Swaymsg    string     `yaml:"swaymsg"`
	Store      Store      `yaml:"store"`
	Log        Log        `yaml:"log"`
}

type Store struct {
	Backend     Backend             `yaml:"backend"`
	Path        string              `yaml:"path"`
	OnMalformed monitors.LoadPolicy `yaml:"on_malformed"`
}

type Log struct {
	Debug   bool `yaml:"debug"`
	Journal bool `yaml:"journal"`
}

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "swaymon", "config.yaml")
}

func Default() Config {
	return Config{
		Compositor: CompositorAuto,
		Swaymsg:    "swaymsg",
		Store: Store{
			Backend:     BackendJSON,
			OnMalformed: monitors.LoadReset,
		},
	}
}

// Detect resolves CompositorAuto from the environment of the running session.
func (c Compositor) Detect() Compositor {
	if c != CompositorAuto {
		return c
	}
	if os.Getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return CompositorHyprland
	}
	return CompositorSway
}

// DefaultStorePath is where a backend keeps its data when no path is configured.
func DefaultStorePath(backend Backend) string {
	if backend == BackendSQLite {
		return filepath.Join(xdg.DataHome, "swaymon", "workspaces.db")
	}
	return filepath.Join(xdg.ConfigHome, "sway", "workspaces.json")
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg.withDefaults(), nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.Compositor == "" {
		c.Compositor = CompositorAuto
	}
	if c.Swaymsg == "" {
		c.Swaymsg = "swaymsg"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendJSON
	}
	if c.Store.OnMalformed == "" {
		c.Store.OnMalformed = monitors.LoadReset
	}
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath(c.Store.Backend)
	}
	return c
}

func (c Config) Validate() error {
	switch c.Compositor {
	case CompositorAuto, CompositorSway, CompositorHyprland:
	default:
		return fmt.Errorf("unknown compositor %q", c.Compositor)
	}
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if !c.Store.OnMalformed.Valid() {
		return fmt.Errorf("unknown on_malformed policy %q", c.Store.OnMalformed)
	}
	return nil
}
