package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/san-kum/trajsim/internal/trajectory"
)

const (
	OutcomeOK        = "ok"
	OutcomeGrounded  = "grounded"
	OutcomeDivergent = "divergent"
	OutcomeInvalid   = "invalid"
)

var (
	launchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trajsim_launches_total",
			Help: "Total number of computed launches by outcome.",
		},
		[]string{"model", "outcome"},
	)

	computeSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trajsim_compute_duration_seconds",
			Help:    "Wall time of a single trajectory computation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
		[]string{"model"},
	)

	samplesPerLaunch = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trajsim_samples_per_launch",
			Help:    "Number of height samples produced per launch.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
		[]string{"model"},
	)
)

func init() {
	prometheus.MustRegister(launchesTotal)
	prometheus.MustRegister(computeSeconds)
	prometheus.MustRegister(samplesPerLaunch)
}

// Outcome classifies a computation for the launches counter.
func Outcome(res *trajectory.Result, err error) string {
	switch {
	case errors.Is(err, trajectory.ErrDivergent):
		return OutcomeDivergent
	case err != nil:
		return OutcomeInvalid
	case res.TimeOfFlight == 0:
		return OutcomeGrounded
	default:
		return OutcomeOK
	}
}

// Record observes one computation.
func Record(model string, res *trajectory.Result, err error, elapsed time.Duration) {
	launchesTotal.WithLabelValues(model, Outcome(res, err)).Inc()
	computeSeconds.WithLabelValues(model).Observe(elapsed.Seconds())
	if err == nil {
		samplesPerLaunch.WithLabelValues(model).Observe(float64(len(res.Heights)))
	}
}

type instrumented struct {
	trajectory.Model
}

// Instrument wraps m so every Compute call is recorded.
func Instrument(m trajectory.Model) trajectory.Model {
	if _, ok := m.(instrumented); ok {
		return m
	}
	return instrumented{m}
}

func (m instrumented) Compute(p trajectory.Params) (*trajectory.Result, error) {
	start := time.Now()
	res, err := m.Model.Compute(p)
	Record(m.Name(), res, err, time.Since(start))
	return res, err
}

// WriteTextfile dumps the current metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
