package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/sim"
)

func restFrame(grid cloth.Grid) []cloth.Vec3 {
	frame := make([]cloth.Vec3, 0, grid.ParticleCount())
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			frame = append(frame, grid.RestPosition(row, col))
		}
	}
	return frame
}

func TestWavefrontOBJCounts(t *testing.T) {
	grid := cloth.NewGrid(2, 1.0, 2.0)
	obj := WavefrontOBJ(restFrame(grid), grid)

	vertices := strings.Count(obj, "\nv ")
	faces := strings.Count(obj, "\nf ")
	if vertices != 9 {
		t.Errorf("expected 9 vertices, got %d", vertices)
	}
	if faces != 4 {
		t.Errorf("expected 4 faces, got %d", faces)
	}
	if !strings.Contains(obj, "o cloth_3x3") {
		t.Error("missing object name")
	}
}

func TestWavefrontOBJSizeMismatch(t *testing.T) {
	grid := cloth.NewGrid(2, 1.0, 2.0)
	if obj := WavefrontOBJ(make([]cloth.Vec3, 4), grid); obj != "" {
		t.Error("expected empty string for mismatched frame")
	}
}

func TestWireframeSVG(t *testing.T) {
	grid := cloth.NewGrid(2, 2.0, 2.0)
	sphere := cloth.Sphere{Center: cloth.Vec3{}, Radius: 1.0, Friction: 0.5}
	floor := cloth.Floor{Height: 0}

	svg := WireframeSVG(restFrame(grid), grid, sphere, floor, 400, 300, 0.5)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("missing sphere outline")
	}
	if !strings.Contains(svg, "<line") {
		t.Error("missing floor line")
	}
	// A 3x3 sheet has 6 row edges and 6 column edges.
	if got := strings.Count(svg, "<path"); got != 12 {
		t.Errorf("expected 12 edge paths, got %d", got)
	}
}

func TestSeriesSVG(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	values := []float64{2.0, 1.5, 1.2, 1.1}

	svg := SeriesSVG(times, values, 400, 300, "#00ff00")
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if !strings.Contains(svg, "M") || !strings.Contains(svg, " L") {
		t.Error("missing polyline path data")
	}

	if svg := SeriesSVG(times[:1], values[:1], 400, 300, "#fff"); svg != "" {
		t.Error("expected empty string for single point")
	}
}

func TestEncodeJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	result := &sim.Result{
		Times:   []float64{0.25},
		Frames:  [][]cloth.Vec3{{{X: 1, Y: 2, Z: 3}}},
		Series:  map[string][]float64{sim.SeriesMinHeight: {2.0}},
		Metrics: map[string]float64{"kinetic": 0.5},
		Ticks:   1,
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, "drop", cfg, result); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var decoded RunJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Name != "drop" || decoded.Ticks != 1 {
		t.Errorf("expected name drop and 1 tick, got %q and %d", decoded.Name, decoded.Ticks)
	}
	if decoded.Frames[0][0] != (cloth.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("frame did not round-trip: %+v", decoded.Frames[0][0])
	}
	if decoded.Config.Cloth.Resolution != cfg.Cloth.Resolution {
		t.Errorf("config did not round-trip: %d", decoded.Config.Cloth.Resolution)
	}
}
