package automation

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/trajectory"
	"golang.org/x/sync/errgroup"
)

// AngleSweep evaluates one launch across a range of angles
type AngleSweep struct {
	Model   string
	From    int
	To      int
	Step    int
	Speed   float64
	Mass    float64
	Drag    float64
	Engine  trajectory.Config
	Workers int
}

// SweepResult holds the metrics for one angle
type SweepResult struct {
	Angle        int
	TimeOfFlight float64
	MaxHeight    float64
	Range        float64
}

func (s *AngleSweep) angles() ([]int, error) {
	if s.Step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %d", s.Step)
	}
	if s.To < s.From {
		return nil, fmt.Errorf("sweep range is empty: %d..%d", s.From, s.To)
	}
	angles := make([]int, 0, (s.To-s.From)/s.Step+1)
	for a := s.From; a <= s.To; a += s.Step {
		angles = append(angles, a)
	}
	return angles, nil
}

// RunSweep evaluates every angle of the sweep concurrently. Results are
// returned in angle order.
func RunSweep(ctx context.Context, sweep *AngleSweep, registry *experiment.Registry, logger *slog.Logger) ([]SweepResult, error) {
	angles, err := sweep.angles()
	if err != nil {
		return nil, err
	}

	model, err := registry.GetModel(sweep.Model, sweep.Engine)
	if err != nil {
		return nil, err
	}

	workers := sweep.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]SweepResult, len(angles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, angle := range angles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := model.Compute(trajectory.Params{Angle: angle, Speed: sweep.Speed, Mass: sweep.Mass, Drag: sweep.Drag})
			if err != nil {
				return fmt.Errorf("angle %d: %w", angle, err)
			}

			results[i] = SweepResult{
				Angle:        angle,
				TimeOfFlight: res.TimeOfFlight,
				MaxHeight:    res.MaxHeight,
				Range:        res.Range,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("sweep complete", "model", sweep.Model, "angles", len(angles), "workers", workers)

	return results, nil
}

// Best returns the sweep entry with the longest range
func Best(results []SweepResult) (SweepResult, bool) {
	if len(results) == 0 {
		return SweepResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Range > best.Range {
			best = r
		}
	}
	return best, true
}
