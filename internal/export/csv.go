package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/trajsim/internal/trajectory"
)

// WriteCSV writes one row per sample: time, horizontal and vertical position.
func WriteCSV(w io.Writer, res *trajectory.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "x", "y"}); err != nil {
		return err
	}

	for i, y := range res.Heights {
		x := 0.0
		if i < len(res.Distances) {
			x = res.Distances[i]
		}
		row := []string{
			strconv.FormatFloat(float64(i)*res.Dt, 'f', 6, 64),
			strconv.FormatFloat(x, 'f', 6, 64),
			strconv.FormatFloat(y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
