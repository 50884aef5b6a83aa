package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajsim/internal/form"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// PlotHeights draws the height samples of res against time.
func PlotHeights(res *trajectory.Result, width, height int, caption string) string {
	if res == nil || len(res.Heights) < 2 {
		return KeyHint.Render("  no flight to plot")
	}

	return asciigraph.Plot(Downsample(res.Heights, width*4),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// PlotCompare overlays the height curves of several results.
func PlotCompare(results []*trajectory.Result, width, height int, caption string) string {
	series := make([][]float64, 0, len(results))
	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Orange, asciigraph.Green, asciigraph.Magenta}
	used := make([]asciigraph.AnsiColor, 0, len(results))
	for i, res := range results {
		if res == nil || len(res.Heights) < 2 {
			continue
		}
		series = append(series, Downsample(res.Heights, width*4))
		used = append(used, colors[i%len(colors)])
	}
	if len(series) == 0 {
		return KeyHint.Render("  no flight to plot")
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(used...),
		asciigraph.Caption(caption),
	)
}

// FormatResult renders the three metrics as a panel.
func FormatResult(res *trajectory.Result) string {
	s := form.Summarize(res)
	rows := []string{
		Title.Render("Results"),
		metricRow("Time of flight", s.TimeOfFlight),
		metricRow("Max height", s.MaxHeight),
		metricRow("Range", s.Range),
	}
	if res != nil {
		rows = append(rows, metricRow("Samples", fmt.Sprintf("%d @ %gs", len(res.Heights), res.Dt)))
	}
	return GlassPanel.Render(strings.Join(rows, "\n"))
}

func metricRow(label, value string) string {
	return MetricLabel.Render(fmt.Sprintf("%-16s", label)) + MetricValue.Render(value)
}

// Downsample keeps at most n evenly spaced samples, always including the
// first and last one.
func Downsample(data []float64, n int) []float64 {
	if n < 2 || len(data) <= n {
		return data
	}
	out := make([]float64, n)
	last := len(data) - 1
	for i := range out {
		out[i] = data[i*last/(n-1)]
	}
	return out
}
