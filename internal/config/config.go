// Package config provides configuration management for pulsesim.
//
// Config file locations (priority order):
//  1. $PULSESIM_CONFIG
//  2. ./pulsesim.yaml
//  3. ~/.config/pulsesim/config.yaml
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/pulsesim"
)

// EnvConfig is the environment variable holding an explicit config path.
const EnvConfig = "PULSESIM_CONFIG"

// Defaults
const (
	DefaultPresses = 1000
	DefaultSink    = "rx"
)

// Config holds the simulation settings. Command line flags override them.
type Config struct {
	// Input is the path of the netlist.
	Input string `yaml:"input,omitempty"`
	// Presses is the number of button presses of the count command. An
	// explicit 0 is kept.
	Presses int `yaml:"presses"`
	// Button and Broadcaster name the entry point of the network.
	Button      string `yaml:"button"`
	Broadcaster string `yaml:"broadcaster"`
	// Sink is used to derive the watch set when Watch is empty.
	Sink string `yaml:"sink"`
	// Watch lists the modules watched by the cycle command.
	Watch []string `yaml:"watch,omitempty"`
	// MaxPresses bounds the cycle command.
	MaxPresses uint64 `yaml:"max_presses"`
}

// Default returns the default configuration.
func Default() *Config {
	c := &Config{Presses: DefaultPresses}
	c.applyDefaults()
	return c
}

// applyDefaults fills in empty names and the press bound. Presses is not
// touched since 0 is a valid count: its default comes from decoding over
// Default().
func (c *Config) applyDefaults() {
	if c.Button == "" {
		c.Button = pulsesim.DefaultButton
	}
	if c.Broadcaster == "" {
		c.Broadcaster = pulsesim.DefaultBroadcaster
	}
	if c.Sink == "" {
		c.Sink = DefaultSink
	}
	if c.MaxPresses == 0 {
		c.MaxPresses = pulsesim.DefaultMaxPresses
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Presses < 0 {
		return errors.Errorf("invalid press count %d", c.Presses)
	}
	seen := make(map[string]bool, len(c.Watch))
	for _, w := range c.Watch {
		if w == "" {
			return errors.New("empty name in watch list")
		}
		if seen[w] {
			return errors.Errorf("%q listed more than once in watch list", w)
		}
		seen[w] = true
	}
	return nil
}

// SearchPaths returns the candidate config file paths in priority order.
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfig); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, "pulsesim.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pulsesim", "config.yaml"))
	}
	return paths
}

// FindPath returns the first existing config file, or "" if there is none.
// A path set through $PULSESIM_CONFIG is returned even if it does not exist
// so that loading it reports the error.
func FindPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none is found.
// It also returns the path of the loaded file.
func Load() (*Config, string, error) {
	path := FindPath()
	if path == "" {
		return Default(), "", nil
	}
	c, err := LoadFromPath(path)
	return c, path, err
}

// LoadFromPath loads the config file at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	// keys absent from the file keep their default value
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create config dir")
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return os.WriteFile(path, data, 0644)
}
