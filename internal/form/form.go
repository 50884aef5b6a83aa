// Package form turns the free-text launch form into engine calls.
package form

import (
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// Form mirrors the launch inputs as typed by the user.
type Form struct {
	Speed         string
	Angle         string
	Mass          string
	Drag          string
	AirResistance bool
}

func (f Form) Params() trajectory.Params {
	return trajectory.Params{
		Angle: ParseAngle(f.Angle),
		Speed: ParseFloat(f.Speed),
		Mass:  ParseFloat(f.Mass),
		Drag:  ParseFloat(f.Drag),
	}
}

func (f Form) ModelName() string {
	return experiment.Select(f.AirResistance)
}

// Evaluate runs the model picked by the air resistance switch.
func (f Form) Evaluate(registry *experiment.Registry, cfg trajectory.Config) (*trajectory.Result, error) {
	model, err := registry.GetModel(f.ModelName(), cfg)
	if err != nil {
		return nil, err
	}
	return model.Compute(f.Params())
}
