// Package config provides configuration loading and access for the swarm.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Swarm     SwarmConfig     `yaml:"swarm"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Palette   PaletteConfig   `yaml:"palette"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SwarmConfig holds the particle engine tuning parameters. The lerp
// factor and the two scale values were tuned empirically; changing them
// changes the feel of the morph, not just its speed.
type SwarmConfig struct {
	Count         int     `yaml:"count"`          // particle pool size
	LerpFactor    float64 `yaml:"lerp_factor"`    // per-frame easing toward the target
	GrabScale     float64 `yaml:"grab_scale"`     // particle scale while assembled
	ReleaseScale  float64 `yaml:"release_scale"`  // particle scale while dispersed
	SpinRate      float64 `yaml:"spin_rate"`      // local spin increment per frame (radians)
	BaseRotation  float64 `yaml:"base_rotation"`  // idle world rotation per frame (radians)
	SteerRotation float64 `yaml:"steer_rotation"` // extra rotation per frame at |handX|=1
}

// GestureConfig holds gesture interpretation parameters.
type GestureConfig struct {
	PinchThreshold float64 `yaml:"pinch_threshold"` // fingertip-thumb distance cutoff
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks averaged for perf stats
}

// PaletteConfig holds render colors as RGB triples. Cosmetic only; the
// simulator never reads it.
type PaletteConfig struct {
	Assembled  [3]uint8 `yaml:"assembled"`
	Dispersed  [3]uint8 `yaml:"dispersed"`
	Background [3]uint8 `yaml:"background"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      float32 // Screen.Width as float32
	ScreenH32      float32 // Screen.Height as float32
	TicksPerWindow int32   // stats window length in ticks at target FPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := int32(c.Telemetry.StatsWindow * float64(c.Screen.TargetFPS))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.TicksPerWindow = ticks
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
