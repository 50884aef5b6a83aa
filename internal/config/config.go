package config

import (
	"fmt"
	"os"

	"github.com/san-kum/trajsim/internal/trajectory"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel    = "ideal"
	DefaultAngle    = 45
	DefaultSpeed    = 20.0
	DefaultMass     = 1.0
	DefaultDrag     = 0.1
	DefaultGravity  = trajectory.DefaultGravity
	DefaultDt       = trajectory.DefaultDt
	DefaultMaxSteps = trajectory.DefaultMaxSteps
)

type Config struct {
	Model         string       `yaml:"model"`
	AirResistance bool         `yaml:"air_resistance"`
	Launch        LaunchConfig `yaml:"launch"`
	Engine        EngineConfig `yaml:"engine"`
}

type LaunchConfig struct {
	Angle int     `yaml:"angle"`
	Speed float64 `yaml:"speed"`
	Mass  float64 `yaml:"mass"`
	Drag  float64 `yaml:"drag"`
}

type EngineConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Dt       float64 `yaml:"dt"`
	MaxSteps int     `yaml:"max_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: DefaultModel,
		Launch: LaunchConfig{
			Angle: DefaultAngle,
			Speed: DefaultSpeed,
			Mass:  DefaultMass,
			Drag:  DefaultDrag,
		},
		Engine: EngineConfig{
			Gravity:  DefaultGravity,
			Dt:       DefaultDt,
			MaxSteps: DefaultMaxSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ModelName resolves the model to run; the air resistance flag wins over the
// model field, matching the toggle in the launch form.
func (c *Config) ModelName() string {
	if c.AirResistance {
		return "drag"
	}
	if c.Model == "" {
		return DefaultModel
	}
	return c.Model
}

func (c *Config) Validate() error {
	switch c.ModelName() {
	case "ideal", "drag":
	default:
		return fmt.Errorf("unknown model: %s", c.Model)
	}
	return c.TrajectoryConfig().Validate()
}

func (c *Config) Params() trajectory.Params {
	return trajectory.Params{
		Angle: c.Launch.Angle,
		Speed: c.Launch.Speed,
		Mass:  c.Launch.Mass,
		Drag:  c.Launch.Drag,
	}
}

func (c *Config) TrajectoryConfig() trajectory.Config {
	return trajectory.Config{
		Gravity:  c.Engine.Gravity,
		Dt:       c.Engine.Dt,
		MaxSteps: c.Engine.MaxSteps,
	}
}
