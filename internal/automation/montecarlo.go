package automation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// MonteCarloConfig defines a launch dispersion study
type MonteCarloConfig struct {
	Model       string
	Base        trajectory.Params
	SpeedSpread float64 // uniform ± m/s
	AngleSpread int     // uniform ± whole degrees
	NumTrials   int
	Engine      trajectory.Config
	Seed        int64
}

// MonteCarloResult is one perturbed launch
type MonteCarloResult struct {
	TrialID   int
	Params    trajectory.Params
	Range     float64
	MaxHeight float64
	Divergent bool
}

// MonteCarloStats summarises the ranges of the converged trials
type MonteCarloStats struct {
	Trials    int
	Divergent int
	MeanRange float64
	MinRange  float64
	MaxRange  float64
	StdRange  float64
}

// RunMonteCarlo evaluates randomly perturbed launches. Divergent trials are
// recorded rather than aborting the run; any other error stops it.
func RunMonteCarlo(cfg *MonteCarloConfig, registry *experiment.Registry, logger *slog.Logger) ([]MonteCarloResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, fmt.Errorf("num trials must be positive, got %d", cfg.NumTrials)
	}

	model, err := registry.GetModel(cfg.Model, cfg.Engine)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	results := make([]MonteCarloResult, 0, cfg.NumTrials)

	for trial := 0; trial < cfg.NumTrials; trial++ {
		p := cfg.Base
		p.Speed += (rng.Float64()*2 - 1) * cfg.SpeedSpread
		if cfg.AngleSpread > 0 {
			p.Angle += rng.Intn(2*cfg.AngleSpread+1) - cfg.AngleSpread
		}
		if p.Speed < 0 {
			p.Speed = 0
		}

		r := MonteCarloResult{TrialID: trial, Params: p}

		res, err := model.Compute(p)
		switch {
		case errors.Is(err, trajectory.ErrDivergent):
			r.Divergent = true
		case err != nil:
			return results, fmt.Errorf("trial %d: %w", trial, err)
		default:
			r.Range = res.Range
			r.MaxHeight = res.MaxHeight
		}

		results = append(results, r)

		if (trial+1)%100 == 0 {
			logger.Debug("monte carlo progress", "done", trial+1, "total", cfg.NumTrials)
		}
	}

	return results, nil
}

// Stats computes summary statistics from Monte Carlo results
func Stats(results []MonteCarloResult) MonteCarloStats {
	stats := MonteCarloStats{Trials: len(results)}

	n := 0
	sum, sumSq := 0.0, 0.0
	for _, r := range results {
		if r.Divergent {
			stats.Divergent++
			continue
		}
		if n == 0 || r.Range < stats.MinRange {
			stats.MinRange = r.Range
		}
		if n == 0 || r.Range > stats.MaxRange {
			stats.MaxRange = r.Range
		}
		sum += r.Range
		sumSq += r.Range * r.Range
		n++
	}

	if n > 0 {
		stats.MeanRange = sum / float64(n)
		variance := sumSq/float64(n) - stats.MeanRange*stats.MeanRange
		stats.StdRange = math.Sqrt(math.Max(variance, 0))
	}

	return stats
}
