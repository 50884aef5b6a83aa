package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/viz"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// maxPlotPoints caps the points per line so vector output stays small.
const maxPlotPoints = 2000

type Axis int

const (
	// AxisDistance plots height against horizontal distance (the flight path).
	AxisDistance Axis = iota
	// AxisTime plots height against elapsed time.
	AxisTime
)

type Series struct {
	Label  string
	Result *trajectory.Result
}

type PlotOptions struct {
	Title  string
	Axis   Axis
	Width  vg.Length
	Height vg.Length
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Projectile trajectory",
		Axis:   AxisDistance,
		Width:  8 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// SavePlot draws every series as a line and writes the chart to path. The
// image format follows the file extension (png, svg, pdf, ...).
func SavePlot(path string, opts PlotOptions, series ...Series) error {
	p, err := NewPlot(opts, series...)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}

func NewPlot(opts PlotOptions, series ...Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Y.Label.Text = "height (m)"
	switch opts.Axis {
	case AxisTime:
		p.X.Label.Text = "time (s)"
	default:
		p.X.Label.Text = "distance (m)"
	}
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, s := range series {
		if s.Result == nil || len(s.Result.Heights) == 0 {
			continue
		}

		line, err := plotter.NewLine(points(s.Result, opts.Axis))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)

		p.Add(line)
		p.Legend.Add(s.Label, line)
		drawn++
	}

	if drawn == 0 {
		return nil, fmt.Errorf("nothing to plot: all %d series are empty", len(series))
	}
	p.Legend.Top = true

	return p, nil
}

func points(res *trajectory.Result, axis Axis) plotter.XYs {
	heights := viz.Downsample(res.Heights, maxPlotPoints)

	var xs []float64
	switch axis {
	case AxisTime:
		xs = viz.Downsample(res.Times(), maxPlotPoints)
	default:
		xs = viz.Downsample(res.Distances, maxPlotPoints)
	}

	pts := make(plotter.XYs, len(heights))
	for i := range pts {
		pts[i].Y = heights[i]
		if i < len(xs) {
			pts[i].X = xs[i]
		}
	}
	return pts
}

// ParseAxis maps a flag value to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "", "x", "distance":
		return AxisDistance, nil
	case "t", "time":
		return AxisTime, nil
	}
	return 0, fmt.Errorf("unknown axis: %s (want distance or time)", s)
}
