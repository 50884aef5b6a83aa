package experiment

import (
	"fmt"
	"time"

	"github.com/san-kum/trajsim/internal/trajectory"
)

type Config struct {
	Model  string
	Params trajectory.Params
	Engine trajectory.Config
}

// Experiment is a single launch bound to a model.
type Experiment struct {
	cfg     Config
	model   trajectory.Model
	elapsed time.Duration
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(registry *Registry) error {
	model, err := registry.GetModel(e.cfg.Model, e.cfg.Engine)
	if err != nil {
		return err
	}
	e.model = model
	return nil
}

func (e *Experiment) Run() (*trajectory.Result, error) {
	if e.model == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	start := time.Now()
	res, err := e.model.Compute(e.cfg.Params)
	e.elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s launch (angle=%d speed=%.2f): %w", e.cfg.Model, e.cfg.Params.Angle, e.cfg.Params.Speed, err)
	}
	return res, nil
}

func (e *Experiment) Config() Config { return e.cfg }

// Elapsed returns the wall time of the last Run.
func (e *Experiment) Elapsed() time.Duration { return e.elapsed }
