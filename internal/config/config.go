package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/clothsim/internal/cloth"
)

const (
	DefaultResolution     = 24
	DefaultClothSize      = 2.2
	DefaultDropHeight     = 2.0
	DefaultStiffness      = 0.5
	DefaultClothFriction  = 0.5
	DefaultSphereRadius   = 1.0
	DefaultSphereFriction = 0.7
	DefaultFloorHeight    = 0.0
	DefaultDuration       = 10.0
)

// Validation errors for hard limits. Soft limits (stiffness, friction)
// are clamped, not rejected.
var (
	ErrResolution = errors.New("config: resolution must be at least 1")
	ErrClothSize  = errors.New("config: cloth size must be positive")
	ErrRadius     = errors.New("config: sphere radius must be positive")
	ErrDuration   = errors.New("config: run duration must be positive")
)

type Config struct {
	Cloth  ClothConfig  `yaml:"cloth"`
	Sphere SphereConfig `yaml:"sphere"`
	Floor  FloorConfig  `yaml:"floor"`
	Run    RunConfig    `yaml:"run"`
}

type ClothConfig struct {
	Resolution int     `yaml:"resolution"`
	Size       float64 `yaml:"size"`
	DropHeight float64 `yaml:"drop_height"`
	Stiffness  float64 `yaml:"stiffness"`
	Friction   float64 `yaml:"friction"`
	// GSM, when set, overrides Stiffness through the areal-density
	// mapping used by the UI.
	GSM float64 `yaml:"gsm,omitempty"`
}

type SphereConfig struct {
	Radius   float64    `yaml:"radius"`
	Friction float64    `yaml:"friction"`
	Position [3]float64 `yaml:"position,flow"`
}

type FloorConfig struct {
	Height float64 `yaml:"height"`
}

type RunConfig struct {
	Duration float64 `yaml:"duration"`        // seconds at the fixed step
	Ticks    int     `yaml:"ticks,omitempty"` // overrides Duration when > 0
}

func DefaultConfig() *Config {
	return &Config{
		Cloth: ClothConfig{
			Resolution: DefaultResolution,
			Size:       DefaultClothSize,
			DropHeight: DefaultDropHeight,
			Stiffness:  DefaultStiffness,
			Friction:   DefaultClothFriction,
		},
		Sphere: SphereConfig{
			Radius:   DefaultSphereRadius,
			Friction: DefaultSphereFriction,
		},
		Floor: FloorConfig{Height: DefaultFloorHeight},
		Run:   RunConfig{Duration: DefaultDuration},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the solver cannot take. It reports the first
// problem found.
func (c *Config) Validate() error {
	if c.Cloth.Resolution < 1 {
		return fmt.Errorf("%w (got %d)", ErrResolution, c.Cloth.Resolution)
	}
	if c.Cloth.Size <= 0 {
		return fmt.Errorf("%w (got %g)", ErrClothSize, c.Cloth.Size)
	}
	if c.Sphere.Radius <= 0 {
		return fmt.Errorf("%w (got %g)", ErrRadius, c.Sphere.Radius)
	}
	if c.Run.Ticks <= 0 && c.Run.Duration <= 0 {
		return fmt.Errorf("%w (got %g)", ErrDuration, c.Run.Duration)
	}
	return nil
}

// Clamp pulls the soft-bounded parameters back into range. Live
// tuning goes through here every tick, so out-of-range edits never
// reach the solver.
func (c *Config) Clamp() {
	c.Cloth.Stiffness = clamp01(c.Cloth.Stiffness)
	c.Cloth.Friction = clamp01(c.Cloth.Friction)
	c.Sphere.Friction = clamp01(c.Sphere.Friction)
	if c.Cloth.GSM != 0 {
		c.Cloth.GSM = math.Min(math.Max(c.Cloth.GSM, MinGSM), MaxGSM)
	}
}

// EffectiveStiffness resolves the stiffness the solver sees: the GSM
// mapping wins when a GSM value is present.
func (c *Config) EffectiveStiffness() float64 {
	if c.Cloth.GSM != 0 {
		return StiffnessFromGSM(c.Cloth.GSM)
	}
	return clamp01(c.Cloth.Stiffness)
}

// Scene builds the solver-facing world from the configuration.
func (c *Config) Scene() (cloth.Grid, cloth.Sphere, cloth.Floor) {
	g := cloth.NewGrid(c.Cloth.Resolution, c.Cloth.Size, c.Cloth.DropHeight)
	s := cloth.Sphere{
		Center:   cloth.Vec3{X: c.Sphere.Position[0], Y: c.Sphere.Position[1], Z: c.Sphere.Position[2]},
		Radius:   c.Sphere.Radius,
		Friction: clamp01(c.Sphere.Friction),
	}
	return g, s, cloth.Floor{Height: c.Floor.Height}
}

// SolverParams resolves the per-tick parameters, including the
// iteration count rule.
func (c *Config) SolverParams() cloth.Params {
	stiff := c.EffectiveStiffness()
	return cloth.Params{
		Stiffness:  stiff,
		Friction:   clamp01(c.Cloth.Friction),
		Iterations: cloth.IterationsFor(c.Cloth.Resolution, stiff),
	}
}

// TickCount is the number of fixed steps a headless run covers.
func (c *Config) TickCount() int {
	if c.Run.Ticks > 0 {
		return c.Run.Ticks
	}
	return int(c.Run.Duration / cloth.FixedStep)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
