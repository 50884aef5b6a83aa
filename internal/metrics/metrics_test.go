package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/san-kum/trajsim/internal/trajectory"
)

func TestOutcome(t *testing.T) {
	divergent := &trajectory.DivergentError{Model: "drag", Steps: 10, Time: 0.01}

	tests := []struct {
		name string
		res  *trajectory.Result
		err  error
		want string
	}{
		{"flight", &trajectory.Result{TimeOfFlight: 2.9}, nil, OutcomeOK},
		{"grounded", &trajectory.Result{}, nil, OutcomeGrounded},
		{"divergent", nil, divergent, OutcomeDivergent},
		{"invalid", nil, errors.New("bad input"), OutcomeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.res, tt.err); got != tt.want {
				t.Errorf("Outcome = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstrumentCountsLaunches(t *testing.T) {
	m := Instrument(trajectory.NewIdeal(trajectory.DefaultConfig()))
	if m.Name() != "ideal" {
		t.Fatalf("wrapped model should keep its name, got %s", m.Name())
	}
	if Instrument(m) != m {
		t.Error("instrumenting twice should not wrap again")
	}

	ok := launchesTotal.WithLabelValues("ideal", OutcomeOK)
	grounded := launchesTotal.WithLabelValues("ideal", OutcomeGrounded)
	okBefore, groundedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(grounded)

	if _, err := m.Compute(trajectory.Params{Angle: 45, Speed: 20}); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Compute(trajectory.Params{Angle: 45}); err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Errorf("expected 1 ok launch, got %v", got)
	}
	if got := testutil.ToFloat64(grounded) - groundedBefore; got != 1 {
		t.Errorf("expected 1 grounded launch, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	Record("drag", &trajectory.Result{TimeOfFlight: 1, Heights: []float64{0, 1, 0}}, nil, 0)

	path := filepath.Join(t.TempDir(), "trajsim.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `trajsim_launches_total{model="drag",outcome="ok"}`) {
		t.Errorf("launch counter missing from output:\n%s", data)
	}
}
