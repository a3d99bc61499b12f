package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/sim"
)

// RunJSON is the full dump of a headless run.
type RunJSON struct {
	Name    string               `json:"name"`
	Config  config.Config        `json:"config"`
	Ticks   int                  `json:"ticks"`
	Times   []float64            `json:"times"`
	Frames  [][]cloth.Vec3       `json:"frames"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

// EncodeJSON writes the run dump to w.
func EncodeJSON(w io.Writer, name string, cfg *config.Config, result *sim.Result) error {
	data := RunJSON{
		Name:    name,
		Config:  *cfg,
		Ticks:   result.Ticks,
		Times:   result.Times,
		Frames:  result.Frames,
		Series:  result.Series,
		Metrics: result.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteJSON writes the run dump to a file; "-" selects stdout.
func WriteJSON(path, name string, cfg *config.Config, result *sim.Result) error {
	if path == "-" {
		return EncodeJSON(os.Stdout, name, cfg, result)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeJSON(file, name, cfg, result)
}
