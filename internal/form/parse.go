package form

import (
	"math"
	"strconv"
	"strings"
)

// ParseAngle reads a whole number of degrees. Anything that is not an
// integer, including "12.5", reads as 0.
func ParseAngle(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseFloat reads a finite real number, falling back to 0 for anything
// else ("NaN", "Inf" and out of range values included).
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
