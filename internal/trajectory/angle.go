package trajectory

import "math"

func DegToRad(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Components splits the launch speed into horizontal and vertical parts.
func Components(angle int, speed float64) (vx, vy float64) {
	theta := DegToRad(angle)
	return speed * math.Cos(theta), speed * math.Sin(theta)
}
