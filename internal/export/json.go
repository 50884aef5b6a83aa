package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trajsim/internal/trajectory"
)

type ExportData struct {
	Model        string            `json:"model"`
	Params       trajectory.Params `json:"params"`
	Engine       trajectory.Config `json:"engine"`
	TimeOfFlight float64           `json:"time_of_flight"`
	MaxHeight    float64           `json:"max_height"`
	Range        float64           `json:"range"`
	Steps        int               `json:"steps"`
	Times        []float64         `json:"times"`
	Heights      []float64         `json:"heights"`
	Distances    []float64         `json:"distances"`
}

func WriteJSON(w io.Writer, p trajectory.Params, engine trajectory.Config, res *trajectory.Result) error {
	data := ExportData{
		Model:        res.Model,
		Params:       p,
		Engine:       engine,
		TimeOfFlight: res.TimeOfFlight,
		MaxHeight:    res.MaxHeight,
		Range:        res.Range,
		Steps:        len(res.Heights),
		Times:        res.Times(),
		Heights:      res.Heights,
		Distances:    res.Distances,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
