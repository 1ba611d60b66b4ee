// Package config holds the tunable constants of a painting run.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/easel/pkg/choreo"
	"github.com/aretw0/easel/pkg/ports"
	"github.com/aretw0/easel/pkg/transform"
)

// Config is the full run configuration.
type Config struct {
	// Scale converts canvas units to motion units.
	Scale float64 `yaml:"scale" mapstructure:"scale"`
	// HoverOffset is the clearance above the canvas for transit moves.
	HoverOffset float64        `yaml:"hover_offset" mapstructure:"hover_offset"`
	Dip         choreo.DipSpec `yaml:"dip" mapstructure:"dip"`
	// SettleDelay is the pause after each dip and each painted path.
	SettleDelay time.Duration `yaml:"settle_delay" mapstructure:"settle_delay"`
	// Step is the Cartesian planning resolution in motion units.
	Step  float64          `yaml:"step" mapstructure:"step"`
	Jumps ports.JumpPolicy `yaml:"jumps" mapstructure:"jumps"`

	Arm   ArmConfig   `yaml:"arm" mapstructure:"arm"`
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// ArmConfig identifies the arm and its lease.
type ArmConfig struct {
	Name     string        `yaml:"name" mapstructure:"name"`
	LeaseTTL time.Duration `yaml:"lease_ttl" mapstructure:"lease_ttl"`
	// Home is the x, y, z rest position of the simulated arm.
	Home []float64 `yaml:"home" mapstructure:"home"`
	// Workspace bounds the simulated arm. Empty means unbounded.
	Workspace []float64 `yaml:"workspace" mapstructure:"workspace"`
}

// StoreConfig selects the progress store backend.
type StoreConfig struct {
	Kind  string      `yaml:"kind" mapstructure:"kind"` // memory, file, redis
	Path  string      `yaml:"path" mapstructure:"path"`
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig configures the redis store and arm lease.
type RedisConfig struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" mapstructure:"password"`
	DB       int           `yaml:"db" mapstructure:"db"`
	Prefix   string        `yaml:"prefix" mapstructure:"prefix"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // text, json, auto
}

// Default returns the constants of the reference painting rig.
func Default() Config {
	return Config{
		Scale:       transform.DefaultScale,
		HoverOffset: 0.01,
		Dip: choreo.DipSpec{
			OffsetX: -0.1,
			OffsetY: -0.1,
			Retreat: 0.2,
		},
		SettleDelay: 500 * time.Millisecond,
		Step:        0.05,
		Jumps:       ports.JumpPolicy{},
		Arm: ArmConfig{
			Name:     "arm",
			LeaseTTL: 30 * time.Second,
			Home:     []float64{0.3, 0, 0.5},
		},
		Store: StoreConfig{
			Kind: "file",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "easel:session:",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads a YAML file and decodes it over Default.
// A missing path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode applies a generic map (from YAML, JSON or flags) onto cfg.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		// Lists replace the defaults instead of overwriting them element by element.
		ZeroFields: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			jumpPolicyHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// jumpPolicyHook accepts "disabled"/"off" or a bare threshold for jumps.
func jumpPolicyHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(ports.JumpPolicy{}) {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "disabled", "off", "false":
			return map[string]any{"threshold": 0.0}, nil
		}
		return map[string]any{"threshold": v}, nil
	case int:
		return map[string]any{"threshold": float64(v)}, nil
	case float64:
		return map[string]any{"threshold": v}, nil
	case bool:
		if !v {
			return map[string]any{"threshold": 0.0}, nil
		}
		return nil, errors.New("jumps: give a threshold to enable jump checks")
	}
	return data, nil
}

// Validate rejects values the choreography cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %v", c.Scale))
	}
	if c.HoverOffset <= 0 {
		errs = append(errs, fmt.Errorf("hover_offset must be positive, got %v", c.HoverOffset))
	}
	if c.Dip.Retreat <= 0 {
		errs = append(errs, fmt.Errorf("dip.retreat must be positive, got %v", c.Dip.Retreat))
	}
	if c.Step <= 0 {
		errs = append(errs, fmt.Errorf("step must be positive, got %v", c.Step))
	}
	if c.SettleDelay < 0 {
		errs = append(errs, fmt.Errorf("settle_delay must not be negative, got %v", c.SettleDelay))
	}
	if c.Jumps.Threshold < 0 {
		errs = append(errs, fmt.Errorf("jumps.threshold must not be negative, got %v", c.Jumps.Threshold))
	}
	if len(c.Arm.Home) != 3 {
		errs = append(errs, fmt.Errorf("arm.home needs 3 values, got %d", len(c.Arm.Home)))
	}
	if n := len(c.Arm.Workspace); n != 0 && n != 6 {
		errs = append(errs, fmt.Errorf("arm.workspace needs 6 values (min xyz, max xyz), got %d", n))
	}
	switch c.Store.Kind {
	case "memory", "file", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}
	return errors.Join(errs...)
}
