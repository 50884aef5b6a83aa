package trajectory

import (
	"fmt"
	"math"
)

// stepEpsilon absorbs float error when tFull/dt lands just below an integer.
const stepEpsilon = 1e-9

// Ideal is drag-free projectile motion solved in closed form.
type Ideal struct {
	Config
}

func NewIdeal(cfg Config) *Ideal {
	return &Ideal{Config: cfg}
}

func (m *Ideal) Name() string { return "ideal" }

func (m *Ideal) Compute(p Params) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !finite(p.Speed) {
		return nil, fmt.Errorf("%s: speed %f: %w", m.Name(), p.Speed, ErrInvalidParams)
	}

	g := m.Gravity
	vx, vy := Components(p.Angle, p.Speed)

	tUp := vy / g
	tFull := 2 * tUp

	// A downward launch gives a negative tFull. The flight time is reported
	// as a magnitude while the signed value still bounds the loop below.
	res := &Result{
		Model:        m.Name(),
		TimeOfFlight: math.Abs(tFull),
		MaxHeight:    vy*tUp - g*tUp*tUp/2,
		Range:        vx * tFull,
		Dt:           m.Dt,
	}

	last := math.Floor(tFull/m.Dt + stepEpsilon)
	if last >= float64(m.MaxSteps) {
		return nil, &DivergentError{Model: m.Name(), Steps: m.MaxSteps, Time: float64(m.MaxSteps) * m.Dt}
	}

	count := 0
	if last >= 0 {
		count = int(last) + 1
	}

	res.Heights = make([]float64, count)
	res.Distances = make([]float64, count)
	for i := 0; i < count; i++ {
		t := float64(i) * m.Dt
		res.Heights[i] = vy*t - g*t*t/2
		res.Distances[i] = vx * t
	}

	return res, nil
}

// ComputeIdeal evaluates the ideal model with the default configuration.
func ComputeIdeal(angle int, speed float64) (*Result, error) {
	return NewIdeal(DefaultConfig()).Compute(Params{Angle: angle, Speed: speed})
}
