package config

import "sort"

// Presets are ready-made fabrics and scenes. Fabric names follow the
// GSM ladder the stiffness slider is labeled with.
var Presets = map[string]*Config{
	"silk": {
		Cloth:  ClothConfig{Resolution: 30, Size: 2.2, DropHeight: 2.0, Stiffness: 0.08, Friction: 0.3},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.5},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 10},
	},
	"cotton": {
		Cloth:  ClothConfig{Resolution: 24, Size: 2.2, DropHeight: 2.0, Stiffness: 0.4, Friction: 0.5},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.7},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 10},
	},
	"denim": {
		Cloth:  ClothConfig{Resolution: 24, Size: 2.2, DropHeight: 2.0, Stiffness: 0.72, Friction: 0.6},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.7},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 10},
	},
	"canvas": {
		Cloth:  ClothConfig{Resolution: 20, Size: 2.2, DropHeight: 2.0, Stiffness: 0.85, Friction: 0.6},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.7},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 10},
	},
	"tarp": {
		Cloth:  ClothConfig{Resolution: 16, Size: 2.4, DropHeight: 2.0, Stiffness: 1.0, Friction: 0.7},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.7},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 10},
	},
	// Slippery showcase: low combined friction, the sheet slides off.
	"slick": {
		Cloth:  ClothConfig{Resolution: 24, Size: 2.2, DropHeight: 2.0, Stiffness: 0.3, Friction: 0.1},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.1},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Duration: 12},
	},
	// Coarse settling check: small sticky sheet dropped on the ball.
	"drop-test": {
		Cloth:  ClothConfig{Resolution: 4, Size: 2.0, DropHeight: 2.0, Stiffness: 1.0, Friction: 0.6},
		Sphere: SphereConfig{Radius: 1.0, Friction: 0.6},
		Floor:  FloorConfig{Height: 0},
		Run:    RunConfig{Ticks: 240},
	},
}

// GetPreset returns a private copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
