package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/integrators"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/render"
	"github.com/san-kum/threebody/internal/trail"
)

const (
	DefaultG          = 1.0
	DefaultDt         = 0.04
	DefaultFPS = 0
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Integrator string          `yaml:"integrator"`
	G          float64         `yaml:"g"`
	Dt         float64         `yaml:"dt"`
	Bodies     []BodyConfig    `yaml:"bodies"`
	Display    DisplayConfig   `yaml:"display"`
	Trail      TrailConfig     `yaml:"trail"`
	Indicator  IndicatorConfig `yaml:"indicator"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BodyConfig struct {
	Mass     float64 `yaml:"mass"`
	Position Vec     `yaml:"position"`
	Velocity Vec     `yaml:"velocity"`
}

type DisplayConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	XScale float64 `yaml:"x_scale"`
	YScale float64 `yaml:"y_scale"`
	FPS    int     `yaml:"fps"` // 0 draws as fast as the display flushes
}

type TrailConfig struct {
	Samples []int `yaml:"samples"`
}

type IndicatorConfig struct {
	On    time.Duration `yaml:"on"`
	Pause time.Duration `yaml:"pause"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: integrators.Default,
		G:          DefaultG,
		Dt:         DefaultDt,
		Bodies:     bodiesToConfig(physics.FigureEight()),
		Display: DisplayConfig{
			Width:  render.DefaultWidth,
			Height: render.DefaultHeight,
			XScale: render.DefaultXScale,
			YScale: render.DefaultYScale,
			FPS:    DefaultFPS,
		},
		Trail: TrailConfig{
			Samples: append([]int(nil), trail.DefaultIndexSet...),
		},
		Indicator: IndicatorConfig{
			On:    display.DefaultFlashOn,
			Pause: display.DefaultFlashPause,
		},
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base, e.g. a preset. A list
// in the file (bodies, samples) replaces the base list as a whole.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Marshal returns cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Validate() error {
	if _, err := integrators.Get(c.Integrator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !finite(c.G) || c.G <= 0 {
		return fmt.Errorf("%w: g must be positive, got %v", ErrInvalidConfig, c.G)
	}
	if !finite(c.Dt) || c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidConfig, c.Dt)
	}
	if len(c.Bodies) != 3 {
		return fmt.Errorf("%w: need exactly 3 bodies, got %d", ErrInvalidConfig, len(c.Bodies))
	}
	for i, b := range c.Bodies {
		if !finite(b.Mass) || b.Mass <= 0 {
			return fmt.Errorf("%w: body %s mass must be positive, got %v", ErrInvalidConfig, dynamo.Role(i), b.Mass)
		}
	}
	if err := physics.CheckDegenerate(c.InitialBodies()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, c.Display.Width, c.Display.Height)
	}
	if !finite(c.Display.XScale) || !finite(c.Display.YScale) || c.Display.XScale == 0 || c.Display.YScale == 0 {
		return fmt.Errorf("%w: display scale must be finite and non-zero", ErrInvalidConfig)
	}
	if c.Display.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative", ErrInvalidConfig)
	}
	if err := trail.IndexSet(c.Trail.Samples).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Indicator.On < 0 || c.Indicator.Pause < 0 {
		return fmt.Errorf("%w: indicator durations must not be negative", ErrInvalidConfig)
	}
	return nil
}

// InitialBodies converts the body list into simulation bodies, assigning
// roles in order. Missing entries are left zero.
func (c *Config) InitialBodies() dynamo.Bodies {
	var b dynamo.Bodies
	for i := range b {
		b[i].Role = dynamo.Role(i)
		if i >= len(c.Bodies) {
			continue
		}
		bc := c.Bodies[i]
		b[i].Mass = bc.Mass
		b[i].Position = dynamo.Vec2{X: bc.Position.X, Y: bc.Position.Y}
		b[i].Velocity = dynamo.Vec2{X: bc.Velocity.X, Y: bc.Velocity.Y}
	}
	return b
}

func (c *Config) Projection() render.Projection {
	return render.Projection{
		Width:  c.Display.Width,
		Height: c.Display.Height,
		XScale: c.Display.XScale,
		YScale: c.Display.YScale,
	}
}

func (c *Config) Samples() trail.IndexSet {
	return trail.IndexSet(append([]int(nil), c.Trail.Samples...))
}

// FrameInterval is the pause between frames, zero when FPS is unset.
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// Clone returns a deep copy so presets can be modified safely.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Bodies = append([]BodyConfig(nil), c.Bodies...)
	cp.Trail.Samples = append([]int(nil), c.Trail.Samples...)
	return &cp
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func bodiesToConfig(b dynamo.Bodies) []BodyConfig {
	out := make([]BodyConfig, len(b))
	for i, body := range b {
		out[i] = BodyConfig{
			Mass:     body.Mass,
			Position: Vec{X: body.Position.X, Y: body.Position.Y},
			Velocity: Vec{X: body.Velocity.X, Y: body.Velocity.Y},
		}
	}
	return out
}
