package trajectory

import (
	"fmt"
	"math"
)

const (
	DefaultGravity  = 9.8
	DefaultDt       = 0.001
	DefaultMaxSteps = 1_000_000
)

// Params describes a single launch. Mass and Drag are only read by the drag
// model.
type Params struct {
	Angle int     `json:"angle" yaml:"angle"`
	Speed float64 `json:"speed" yaml:"speed"`
	Mass  float64 `json:"mass" yaml:"mass"`
	Drag  float64 `json:"drag" yaml:"drag"`
}

// Config holds the constants shared by both models.
type Config struct {
	Gravity  float64 `json:"gravity" yaml:"gravity"`
	Dt       float64 `json:"dt" yaml:"dt"`
	MaxSteps int     `json:"max_steps" yaml:"max_steps"`
}

func DefaultConfig() Config {
	return Config{
		Gravity:  DefaultGravity,
		Dt:       DefaultDt,
		MaxSteps: DefaultMaxSteps,
	}
}

func (c Config) Validate() error {
	if !(c.Gravity > 0) || math.IsInf(c.Gravity, 0) {
		return fmt.Errorf("gravity must be positive, got %f: %w", c.Gravity, ErrInvalidConfig)
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("dt must be positive, got %f: %w", c.Dt, ErrInvalidConfig)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d: %w", c.MaxSteps, ErrInvalidConfig)
	}
	return nil
}

// Result is the output of one model evaluation. Heights[i] and Distances[i]
// are the projectile position at t = i*Dt.
type Result struct {
	Model        string    `json:"model"`
	TimeOfFlight float64   `json:"time_of_flight"`
	MaxHeight    float64   `json:"max_height"`
	Range        float64   `json:"range"`
	Dt           float64   `json:"dt"`
	Heights      []float64 `json:"heights"`
	Distances    []float64 `json:"distances"`
}

// Times returns the sample times matching Heights.
func (r *Result) Times() []float64 {
	times := make([]float64, len(r.Heights))
	for i := range times {
		times[i] = float64(i) * r.Dt
	}
	return times
}

// IsZero reports whether the result carries no flight at all.
func (r *Result) IsZero() bool {
	return r.TimeOfFlight == 0 && r.MaxHeight == 0 && r.Range == 0 && len(r.Heights) == 0
}

type Model interface {
	Name() string
	Compute(p Params) (*Result, error)
}

func zeroResult(model string, dt float64) *Result {
	return &Result{
		Model:     model,
		Dt:        dt,
		Heights:   []float64{},
		Distances: []float64{},
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
