package trajectory

import (
	"errors"
	"math"
	"testing"
)

func TestIdealRegression(t *testing.T) {
	res, err := ComputeIdeal(45, 20)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"time of flight", res.TimeOfFlight, 2.886},
		{"max height", res.MaxHeight, 10.204},
		{"range", res.Range, 40.816},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-3 {
			t.Errorf("%s: expected %.3f, got %.6f", tt.name, tt.expected, tt.got)
		}
	}
}

func TestIdealSamples(t *testing.T) {
	res, err := ComputeIdeal(45, 20)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	// t = 0 .. 2.886 inclusive at 1ms
	if len(res.Heights) != 2887 {
		t.Errorf("expected 2887 samples, got %d", len(res.Heights))
	}
	if len(res.Distances) != len(res.Heights) {
		t.Errorf("distances (%d) and heights (%d) differ in length", len(res.Distances), len(res.Heights))
	}
	if res.Heights[0] != 0 {
		t.Errorf("expected first sample 0, got %f", res.Heights[0])
	}

	last := res.Heights[len(res.Heights)-1]
	if last < 0 || last > 0.01 {
		t.Errorf("expected last sample near ground, got %f", last)
	}

	for i, y := range res.Heights {
		if y > res.MaxHeight+1e-9 {
			t.Fatalf("sample %d (%f) exceeds max height %f", i, y, res.MaxHeight)
		}
	}
}

func TestIdealDegenerateLaunch(t *testing.T) {
	tests := []struct {
		name  string
		angle int
		speed float64
	}{
		{"zero speed", 45, 0},
		{"zero angle", 0, 20},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeIdeal(tt.angle, tt.speed)
			if err != nil {
				t.Fatalf("compute failed: %v", err)
			}
			if res.TimeOfFlight != 0 || res.MaxHeight != 0 || res.Range != 0 {
				t.Errorf("expected zero metrics, got t=%f h=%f r=%f", res.TimeOfFlight, res.MaxHeight, res.Range)
			}
			if len(res.Heights) != 1 || res.Heights[0] != 0 {
				t.Errorf("expected a single zero sample, got %v", res.Heights)
			}
		})
	}
}

func TestIdealDownwardLaunch(t *testing.T) {
	res, err := ComputeIdeal(-30, 10)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	expected := 2 * 10 * math.Sin(math.Pi/6) / DefaultGravity
	if math.Abs(res.TimeOfFlight-expected) > 1e-9 {
		t.Errorf("expected |tFull| %.6f, got %.6f", expected, res.TimeOfFlight)
	}
	if len(res.Heights) != 0 {
		t.Errorf("expected no samples for negative flight time, got %d", len(res.Heights))
	}
	if res.Range >= 0 {
		t.Errorf("expected signed closed-form range, got %f", res.Range)
	}
}

func TestIdealRangePeaksAt45(t *testing.T) {
	best, err := ComputeIdeal(45, 30)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	prev := 0.0
	for angle := 1; angle <= 89; angle++ {
		res, err := ComputeIdeal(angle, 30)
		if err != nil {
			t.Fatalf("angle %d: %v", angle, err)
		}
		if angle != 45 && res.Range >= best.Range {
			t.Errorf("angle %d: range %f not below 45° range %f", angle, res.Range, best.Range)
		}
		if angle <= 45 && angle > 1 && res.Range <= prev {
			t.Errorf("angle %d: range %f should increase (prev %f)", angle, res.Range, prev)
		}
		if angle > 45 && res.Range >= prev {
			t.Errorf("angle %d: range %f should decrease (prev %f)", angle, res.Range, prev)
		}
		prev = res.Range
	}
}

func TestIdealStepCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 1000

	_, err := NewIdeal(cfg).Compute(Params{Angle: 60, Speed: 100})
	if !errors.Is(err, ErrDivergent) {
		t.Fatalf("expected ErrDivergent, got %v", err)
	}

	var divErr *DivergentError
	if !errors.As(err, &divErr) {
		t.Fatalf("expected *DivergentError, got %T", err)
	}
	if divErr.Model != "ideal" || divErr.Steps != 1000 {
		t.Errorf("unexpected error context: %+v", divErr)
	}
}

func TestIdealHugeSpeed(t *testing.T) {
	_, err := ComputeIdeal(45, 1e12)
	if !errors.Is(err, ErrDivergent) {
		t.Fatalf("expected ErrDivergent, got %v", err)
	}
}

func TestIdealInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		speed float64
		want  error
	}{
		{"nan speed", DefaultConfig(), math.NaN(), ErrInvalidParams},
		{"inf speed", DefaultConfig(), math.Inf(1), ErrInvalidParams},
		{"zero dt", Config{Gravity: 9.8, Dt: 0, MaxSteps: 10}, 10, ErrInvalidConfig},
		{"negative gravity", Config{Gravity: -9.8, Dt: 0.01, MaxSteps: 10}, 10, ErrInvalidConfig},
		{"zero max steps", Config{Gravity: 9.8, Dt: 0.01}, 10, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIdeal(tt.cfg).Compute(Params{Angle: 45, Speed: tt.speed})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestIdealCoarseStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0.1

	res, err := NewIdeal(cfg).Compute(Params{Angle: 45, Speed: 20})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	// t = 0 .. 2.8 inclusive
	if len(res.Heights) != 29 {
		t.Errorf("expected 29 samples, got %d", len(res.Heights))
	}
	if math.Abs(res.TimeOfFlight-2.886) > 1e-3 {
		t.Errorf("closed-form metrics should not depend on dt, got %f", res.TimeOfFlight)
	}
}
