// Package scenario builds the initial body set and simulation settings from TOML files or built-in presets
package scenario

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/physics"
)

// Scenario errors
var (
	ErrNoBodies      = errors.New("scenario defines no bodies")
	ErrUnknownKey    = errors.New("unknown scenario key")
	ErrUnknownCenter = errors.New("orbit center not found")
)

// Scenario is a ready-to-run initial state
type Scenario struct {
	Name   string
	Config engine.Config
	Bodies []*core.Body
}

// File mirrors the TOML layout; pointer fields distinguish "absent" from zero
type File struct {
	Name       string            `toml:"name"`
	Seed       *uint64           `toml:"seed"`
	Simulation SimulationSection `toml:"simulation"`
	Bodies     []BodySpec        `toml:"body"`
}

// SimulationSection overrides engine.Config fields
type SimulationSection struct {
	Timestep    *float64 `toml:"timestep"`
	Gravity     *float64 `toml:"gravity"`
	Policy      string   `toml:"policy"`
	SmartRatio  *float64 `toml:"smart_ratio"`
	Bounce      *bool    `toml:"bounce"`
	MaxOrbit    *int     `toml:"max_orbit"`
	RadiusScale *float64 `toml:"radius_scale"`
}

// BodySpec is one [[body]] entry
// Position and radius are in AU, mass in Earth masses, velocity in m/s
type BodySpec struct {
	Name   string  `toml:"name"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
	Mass   float64 `toml:"mass"`
	VX     float64 `toml:"vx"`
	VY     float64 `toml:"vy"`
	Color  string  `toml:"color"`

	// OrbitAround names an earlier body; vx/vy are then added to a circular orbit velocity around it
	OrbitAround string `toml:"orbit_around"`
	Clockwise   bool   `toml:"clockwise"`
}

// Load reads and builds a scenario file on top of engine.DefaultConfig
func Load(path string) (*Scenario, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	if f.Name == "" {
		f.Name = path
	}
	return f.Build(engine.DefaultConfig())
}

// Parse decodes scenario TOML from a string
func Parse(data string) (*Scenario, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "scenario")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return f.Build(engine.DefaultConfig())
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return errors.Wrapf(ErrUnknownKey, "%s", strings.Join(keys, ", "))
}

// Build applies the file's overrides to base and constructs its bodies
func (f *File) Build(base engine.Config) (*Scenario, error) {
	cfg, err := f.Simulation.apply(base)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(f.Bodies) == 0 {
		return nil, ErrNoBodies
	}

	seed := uint64(parameter.ColorSeed)
	if f.Seed != nil {
		seed = *f.Seed
	}
	palette := core.NewPalette(seed)

	bodies := make([]*core.Body, 0, len(f.Bodies))
	named := make(map[string]*core.Body)
	for i, spec := range f.Bodies {
		b, err := spec.build(palette, named, cfg.G)
		if err != nil {
			return nil, errors.Wrapf(err, "body %d", i)
		}
		if spec.Name != "" {
			named[spec.Name] = b
		}
		bodies = append(bodies, b)
	}

	return &Scenario{Name: f.Name, Config: cfg, Bodies: bodies}, nil
}

func (s SimulationSection) apply(cfg engine.Config) (engine.Config, error) {
	if s.Timestep != nil {
		cfg.Timestep = *s.Timestep
	}
	if s.Gravity != nil {
		cfg.G = *s.Gravity
	}
	if s.Policy != "" {
		p, err := physics.ParsePolicy(s.Policy)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if s.SmartRatio != nil {
		cfg.SmartMassRatio = *s.SmartRatio
	}
	if s.Bounce != nil {
		cfg.Bounce = *s.Bounce
	}
	if s.MaxOrbit != nil {
		cfg.MaxOrbit = *s.MaxOrbit
	}
	if s.RadiusScale != nil {
		cfg.RadiusScale = *s.RadiusScale
	}
	return cfg, nil
}

func (s BodySpec) build(palette *core.Palette, named map[string]*core.Body, g float64) (*core.Body, error) {
	var color core.RGB
	if s.Color != "" {
		c, err := core.ParseHex(s.Color)
		if err != nil {
			return nil, err
		}
		color = c
	} else {
		color = palette.Next()
	}

	b, err := core.NewBody(s.X, s.Y, s.Radius, s.Mass, color)
	if err != nil {
		return nil, err
	}
	b.Vel = r2.Vec{X: s.VX, Y: s.VY}

	if s.OrbitAround != "" {
		center, ok := named[s.OrbitAround]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownCenter, "%q", s.OrbitAround)
		}
		orbit := physics.OrbitalInsert(center.Pos, b.Pos, g, center.Mass, s.Clockwise)
		b.Vel = r2.Add(b.Vel, r2.Add(orbit, center.Vel))
	}

	return b, b.Validate()
}
