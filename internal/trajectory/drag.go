package trajectory

import (
	"fmt"
	"math"
	"slices"
)

// Drag is projectile motion under gravity plus a drag force linear in
// velocity (F = -k*v). Positions come from the analytic solution
//
//	y(t) = (m/k) * ((vy + m*g/k) * (1 - e^(-k*t/m)) - g*t)
//	x(t) = (vx*m/k) * (1 - e^(-k*t/m))
//
// sampled every Dt until the projectile drops below ground level.
type Drag struct {
	Config
}

func NewDrag(cfg Config) *Drag {
	return &Drag{Config: cfg}
}

func (m *Drag) Name() string { return "drag" }

func (m *Drag) Compute(p Params) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	// m/k is undefined at the boundary; an unfilled drag form is not an error.
	if p.Mass == 0 || p.Drag == 0 {
		return zeroResult(m.Name(), m.Dt), nil
	}
	if !finite(p.Speed, p.Mass, p.Drag) {
		return nil, fmt.Errorf("%s: speed=%f mass=%f k=%f: %w", m.Name(), p.Speed, p.Mass, p.Drag, ErrInvalidParams)
	}

	g := m.Gravity
	vx, vy := Components(p.Angle, p.Speed)
	tau := p.Mass / p.Drag


	heights := make([]float64, 0, m.capacityHint(vy))
	distances := make([]float64, 0, cap(heights))

	for i := 0; ; i++ {
		if i >= m.MaxSteps {
			return nil, &DivergentError{Model: m.Name(), Steps: i, Time: float64(i) * m.Dt}
		}

		t := float64(i) * m.Dt
		d, sag := decay(t / tau)
		y := tau*vy*d - g*tau*tau*sag
		if !(y >= 0) {
			break
		}

		heights = append(heights, y)
		distances = append(distances, vx*tau*d)
	}

	if len(heights) == 0 {
		return zeroResult(m.Name(), m.Dt), nil
	}

	last := len(heights) - 1
	return &Result{
		Model:        m.Name(),
		TimeOfFlight: float64(last) * m.Dt,
		MaxHeight:    slices.Max(heights),
		Range:        distances[last],
		Dt:           m.Dt,
		Heights:      heights,
		Distances:    distances,
	}, nil
}

// seriesCutoff is where x + e^(-x) - 1 switches to its Taylor series.
const seriesCutoff = 1e-3

// decay returns 1 - e^(-x) and x + e^(-x) - 1 for x = t/tau. Both stay
// accurate as tau grows, so the drag curve converges to the ideal one.
func decay(x float64) (d, sag float64) {
	em := math.Expm1(-x)
	if math.Abs(x) < seriesCutoff {
		x2 := x * x
		return -em, x2/2 - x2*x/6 + x2*x2/24 - x2*x2*x/120
	}
	return -em, x + em
}

// capacityHint sizes the sample buffers from the drag-free flight time. For
// positive mass and k that is an upper bound on the drag flight time.
func (m *Drag) capacityHint(vy float64) int {
	if vy <= 0 {
		return 1
	}
	n := 2*vy/m.Gravity/m.Dt + 2
	if n > float64(m.MaxSteps) {
		return m.MaxSteps
	}
	return int(n)
}

// ComputeWithDrag evaluates the drag model with the default configuration.
func ComputeWithDrag(angle int, speed, mass, k float64) (*Result, error) {
	return NewDrag(DefaultConfig()).Compute(Params{Angle: angle, Speed: speed, Mass: mass, Drag: k})
}
