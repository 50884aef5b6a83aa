package automation

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/trajectory"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of launches
type Scenario struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Engine      *trajectory.Config `yaml:"engine"`
	Steps       []ScenarioStep     `yaml:"steps"`
}

// ScenarioStep is a single launch in a scenario
type ScenarioStep struct {
	Name  string  `yaml:"name"`
	Model string  `yaml:"model"`
	Angle int     `yaml:"angle"`
	Speed float64 `yaml:"speed"`
	Mass  float64 `yaml:"mass"`
	Drag  float64 `yaml:"drag"`
}

// StepResult pairs a scenario step with its trajectory
type StepResult struct {
	Step   ScenarioStep
	Result *trajectory.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Keys missing from the engine block keep their defaults.
	engine := trajectory.DefaultConfig()
	scenario := Scenario{Engine: &engine}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// RunScenario evaluates every step in order and stops at the first failure
func RunScenario(scenario *Scenario, registry *experiment.Registry, logger *slog.Logger) ([]StepResult, error) {
	engine := trajectory.DefaultConfig()
	if scenario.Engine != nil {
		engine = *scenario.Engine
	}

	results := make([]StepResult, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		model := step.Model
		if model == "" {
			model = "ideal"
		}

		exp := experiment.New(experiment.Config{
			Model:  model,
			Params: trajectory.Params{Angle: step.Angle, Speed: step.Speed, Mass: step.Mass, Drag: step.Drag},
			Engine: engine,
		})
		if err := exp.Setup(registry); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := exp.Run()
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		logger.Debug("scenario step complete",
			"scenario", scenario.Name,
			"step", i+1,
			"model", model,
			"samples", len(res.Heights),
			"elapsed", exp.Elapsed(),
		)

		results = append(results, StepResult{Step: step, Result: res})
	}

	return results, nil
}
