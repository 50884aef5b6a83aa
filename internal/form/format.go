package form

import (
	"fmt"

	"github.com/san-kum/trajsim/internal/trajectory"
)

func FormatSeconds(v float64) string { return fmt.Sprintf("%.2f s", v) }
func FormatMeters(v float64) string  { return fmt.Sprintf("%.2f m", v) }

// Summary is a result ready for display.
type Summary struct {
	TimeOfFlight string
	MaxHeight    string
	Range        string
}

func Summarize(res *trajectory.Result) Summary {
	if res == nil {
		res = &trajectory.Result{}
	}
	return Summary{
		TimeOfFlight: FormatSeconds(res.TimeOfFlight),
		MaxHeight:    FormatMeters(res.MaxHeight),
		Range:        FormatMeters(res.Range),
	}
}
