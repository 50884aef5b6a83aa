package experiment

import (
	"errors"
	"slices"
	"testing"

	"github.com/san-kum/trajsim/internal/trajectory"
)

func TestRegistryModels(t *testing.T) {
	r := NewRegistry()

	models := r.ListModels()
	if !slices.Equal(models, []string{"drag", "ideal"}) {
		t.Errorf("unexpected models: %v", models)
	}

	for _, name := range models {
		m, err := r.GetModel(name, trajectory.DefaultConfig())
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("expected model %s, got %s", name, m.Name())
		}
	}

	if _, err := r.GetModel("rk4", trajectory.DefaultConfig()); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestSelect(t *testing.T) {
	if Select(false) != "ideal" {
		t.Errorf("expected ideal, got %s", Select(false))
	}
	if Select(true) != "drag" {
		t.Errorf("expected drag, got %s", Select(true))
	}
}

func TestExperimentRun(t *testing.T) {
	exp := New(Config{
		Model:  "drag",
		Params: trajectory.Params{Angle: 45, Speed: 20, Mass: 1, Drag: 0.1},
		Engine: trajectory.DefaultConfig(),
	})

	if _, err := exp.Run(); err == nil {
		t.Fatal("expected error before setup")
	}

	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	res, err := exp.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Model != "drag" {
		t.Errorf("expected drag result, got %s", res.Model)
	}
	if res.Range <= 0 {
		t.Errorf("expected positive range, got %f", res.Range)
	}
}

func TestExperimentWrapsDivergence(t *testing.T) {
	engine := trajectory.DefaultConfig()
	engine.MaxSteps = 100

	exp := New(Config{Model: "ideal", Params: trajectory.Params{Angle: 45, Speed: 20}, Engine: engine})
	if err := exp.Setup(NewRegistry()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := exp.Run()
	if !errors.Is(err, trajectory.ErrDivergent) {
		t.Errorf("expected ErrDivergent, got %v", err)
	}
}
