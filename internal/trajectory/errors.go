package trajectory

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory computations.
var (
	// ErrDivergent indicates the sampling loop hit its step cap before the
	// projectile returned to ground level.
	ErrDivergent = errors.New("trajectory: divergent trajectory (step limit exceeded)")

	// ErrInvalidParams indicates a non-finite launch parameter.
	ErrInvalidParams = errors.New("trajectory: invalid launch parameters")

	// ErrInvalidConfig indicates a non-positive gravity, timestep or step cap.
	ErrInvalidConfig = errors.New("trajectory: invalid engine configuration")
)

// DivergentError reports where a sampling loop was stopped.
type DivergentError struct {
	Model string
	Steps int
	Time  float64
}

func (e *DivergentError) Error() string {
	return fmt.Sprintf("%s: no ground contact after %d steps (t=%.3fs): %v", e.Model, e.Steps, e.Time, ErrDivergent)
}

func (e *DivergentError) Unwrap() error {
	return ErrDivergent
}
