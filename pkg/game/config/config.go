// Package config holds the tuning for the input layer and the demo hosts.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"rebind/pkg/engine/input"
)

// Renderer names accepted by Config.Renderer.
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

type Config struct {
	Renderer string         `yaml:"renderer"`
	Language string         `yaml:"language"`
	Axis     AxisConfig     `yaml:"axis"`
	Gamepad  GamepadConfig  `yaml:"gamepad"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Bindings adds inputs to controls on top of the default layout, e.g.
	// fire: [keyboard:X]. Keys are control names as the console takes them.
	Bindings map[string][]string `yaml:"bindings"`
}

type AxisConfig struct {
	// Scale is milliseconds per unit of axis travel.
	Scale float64 `yaml:"scale"`
}

type GamepadConfig struct {
	DeadZone float64 `yaml:"dead_zone"`
}

type TerminalConfig struct {
	// ReleaseAfter is how long a key stays held after its last byte arrived.
	// Terminals report no key-up, so releases are synthesized.
	ReleaseAfter time.Duration `yaml:"release_after"`
	FrameRate    int           `yaml:"frame_rate"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LoggingConfig struct {
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Renderer: RendererTUI,
		Language: "en_GB",
		Axis:     AxisConfig{Scale: input.DefaultAxisScale},
		Gamepad:  GamepadConfig{DeadZone: input.DefaultDeadZone},
		Terminal: TerminalConfig{
			ReleaseAfter: 600 * time.Millisecond,
			FrameRate:    30,
		},
		Window: WindowConfig{Width: 800, Height: 600},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.Axis.Scale <= 0 {
		return errors.New("axis.scale must be positive")
	}
	if c.Gamepad.DeadZone < 0 || c.Gamepad.DeadZone >= 1 {
		return errors.New("gamepad.dead_zone must be in [0, 1)")
	}
	if c.Terminal.FrameRate <= 0 {
		return errors.New("terminal.frame_rate must be positive")
	}
	if c.Terminal.ReleaseAfter <= 0 {
		return errors.New("terminal.release_after must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// InputOptions returns the Manager options derived from the config.
func (c *Config) InputOptions() []input.Option {
	return []input.Option{input.WithAxisScale(c.Axis.Scale)}
}

// FrameInterval is the terminal host's frame period.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Terminal.FrameRate)
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the process-wide configuration.
func Current() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the process-wide configuration.
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
