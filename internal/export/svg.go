package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajsim/internal/trajectory"
)

// TrajectoryToSVG renders the flight path (height over distance) as a bare
// SVG polyline.
func TrajectoryToSVG(res *trajectory.Result, width, height int, strokeColor string) string {
	if res == nil || len(res.Heights) < 2 || len(res.Distances) != len(res.Heights) {
		return ""
	}

	xs, ys := res.Distances, res.Heights

	// Find bounds
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	step := max(len(xs)/(width*2), 1)
	for i := 0; i < len(xs); i += step {
		sb.WriteString(svgPoint(i, xs[i], ys[i], minX, minY, rangeX, rangeY, width, height))
	}
	if last := len(xs) - 1; last%step != 0 {
		sb.WriteString(svgPoint(last, xs[last], ys[last], minX, minY, rangeX, rangeY, width, height))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func svgPoint(i int, x, y, minX, minY, rangeX, rangeY float64, width, height int) string {
	px := (x - minX) / rangeX * float64(width)
	py := float64(height) - (y-minY)/rangeY*float64(height)
	if i == 0 {
		return fmt.Sprintf("%.1f,%.1f", px, py)
	}
	return fmt.Sprintf(" L%.1f,%.1f", px, py)
}
