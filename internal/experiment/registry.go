package experiment

import (
	"fmt"
	"slices"

	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/trajectory"
)

type Registry struct {
	models map[string]func(trajectory.Config) trajectory.Model
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func(trajectory.Config) trajectory.Model),
	}

	r.models["ideal"] = func(cfg trajectory.Config) trajectory.Model { return trajectory.NewIdeal(cfg) }
	r.models["drag"] = func(cfg trajectory.Config) trajectory.Model { return trajectory.NewDrag(cfg) }

	return r
}

// GetModel builds the named model. Every Compute on the returned model is
// recorded in the launch metrics.
func (r *Registry) GetModel(name string, cfg trajectory.Config) (trajectory.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return metrics.Instrument(fn(cfg)), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select maps the "consider air resistance" switch to a model name.
func Select(airResistance bool) string {
	if airResistance {
		return "drag"
	}
	return "ideal"
}
