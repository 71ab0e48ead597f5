package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/clockgrid/internal/dynamo"
)

const (
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
	DefaultRadius       = 30
	DefaultFPS          = 60
	DefaultRunDt        = 1.0 / 60
	DefaultRunFrames    = 600
	DefaultLogLevel     = "info"

	// offsetMargin is added to the radius when Screen.Offset is unset.
	offsetMargin = 10
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Screen       ScreenConfig      `yaml:"screen"`
	Coupling     CouplingConfig    `yaml:"coupling"`
	Pacemakers   []PacemakerConfig `yaml:"pacemakers,omitempty"`
	NoPacemakers bool              `yaml:"no_pacemakers,omitempty"`
	Init         string            `yaml:"init"`
	Seed         int64             `yaml:"seed"`
	Workers      int               `yaml:"workers"`
	MaxFrameTime float64           `yaml:"max_frame_time"`
	Run          RunConfig         `yaml:"run"`
	LogLevel     string            `yaml:"log_level"`
}

type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Radius int `yaml:"radius"`
	// Offset is the pixel position of the first clock centre; 0 means
	// radius + 10.
	Offset int `yaml:"offset,omitempty"`
	FPS    int `yaml:"fps"`
}

type CouplingConfig struct {
	Rate      float64 `yaml:"rate"`
	HandRatio float64 `yaml:"hand_ratio"`
}

// PacemakerConfig pins cell (x, y) at a speed given in turns per second.
type PacemakerConfig struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Turns float64 `yaml:"turns"`
}

// RunConfig drives the headless run command.
type RunConfig struct {
	Dt     float64 `yaml:"dt"`
	Frames int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  DefaultScreenWidth,
			Height: DefaultScreenHeight,
			Radius: DefaultRadius,
			FPS:    DefaultFPS,
		},
		Coupling: CouplingConfig{
			Rate:      dynamo.DefaultRate,
			HandRatio: dynamo.DefaultHandRatio,
		},
		Init:         string(dynamo.InitRandom),
		MaxFrameTime: 0.25,
		Run: RunConfig{
			Dt:     DefaultRunDt,
			Frames: DefaultRunFrames,
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads path over a copy of base, so keys missing from the file
// keep base's values. base is not modified.
func LoadInto(path string, base *Config) (*Config, error) {
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
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the config as yaml. An empty pacemaker list is written
// as no_pacemakers, since yaml omits it and it would reload as the
// default pair.
func (c *Config) Marshal() ([]byte, error) {
	out := c.Clone()
	if out.Pacemakers != nil && len(out.Pacemakers) == 0 {
		out.NoPacemakers = true
	}
	return yaml.Marshal(out)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Pacemakers != nil {
		out.Pacemakers = append(make([]PacemakerConfig, 0, len(c.Pacemakers)), c.Pacemakers...)
	}
	return &out
}

func (c *Config) Validate() error {
	s := c.Screen
	if s.Radius <= 0 {
		return fmt.Errorf("%w: radius %d", ErrInvalidConfig, s.Radius)
	}
	if s.Offset < 0 {
		return fmt.Errorf("%w: offset %d", ErrInvalidConfig, s.Offset)
	}
	if s.FPS < 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, s.FPS)
	}
	if w, h := c.Layout().Dims(); w < 1 || h < 1 {
		return fmt.Errorf("%w: screen %dx%d fits no clocks at radius %d",
			ErrInvalidConfig, s.Width, s.Height, s.Radius)
	}
	if c.Coupling.Rate < 0 || !finite(c.Coupling.Rate) {
		return fmt.Errorf("%w: coupling rate %v", ErrInvalidConfig, c.Coupling.Rate)
	}
	if !(c.Coupling.HandRatio > 0) || !finite(c.Coupling.HandRatio) {
		return fmt.Errorf("%w: hand ratio %v", ErrInvalidConfig, c.Coupling.HandRatio)
	}
	switch dynamo.InitMode(c.Init) {
	case dynamo.InitRandom, dynamo.InitRest:
	default:
		return fmt.Errorf("%w: init %q (want random or rest)", ErrInvalidConfig, c.Init)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if !finite(c.MaxFrameTime) {
		return fmt.Errorf("%w: max frame time %v", ErrInvalidConfig, c.MaxFrameTime)
	}
	if !(c.Run.Dt > 0) || !finite(c.Run.Dt) {
		return fmt.Errorf("%w: run dt %v", ErrInvalidConfig, c.Run.Dt)
	}
	if c.Run.Frames < 0 {
		return fmt.Errorf("%w: run frames %d", ErrInvalidConfig, c.Run.Frames)
	}
	for _, pm := range c.Pacemakers {
		if !finite(pm.Turns) {
			return fmt.Errorf("%w: pacemaker (%d,%d) turns %v", ErrInvalidConfig, pm.X, pm.Y, pm.Turns)
		}
	}
	return nil
}

// Params translates the config into grid construction parameters.
// A nil pacemaker list keeps the default pair; an empty one or
// NoPacemakers disables it.
func (c *Config) Params() dynamo.Params {
	w, h := c.Layout().Dims()
	p := dynamo.Params{
		Width:  w,
		Height: h,
		Coupling: dynamo.Coupling{
			Rate:      c.Coupling.Rate,
			HandRatio: c.Coupling.HandRatio,
		},
		Init:    dynamo.InitMode(c.Init),
		Seed:    c.Seed,
		Workers: c.Workers,
	}
	if c.NoPacemakers {
		p.Pacemakers = []dynamo.Pacemaker{}
	} else if c.Pacemakers != nil {
		p.Pacemakers = make([]dynamo.Pacemaker, 0, len(c.Pacemakers))
		for _, pm := range c.Pacemakers {
			p.Pacemakers = append(p.Pacemakers, dynamo.Pacemaker{
				X: pm.X, Y: pm.Y, Speed: pm.Turns * dynamo.TwoPi,
			})
		}
	}
	return p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
