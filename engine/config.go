package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/physics"
	"github.com/lixenwraith/planet-sim/vmath"
)

// ErrInvalidConfig is returned by Config.Validate and New
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config is fixed for the lifetime of a Simulation
type Config struct {
	// G is the gravitational constant
	G float64
	// Timestep is simulated seconds per tick
	Timestep float64

	Policy physics.Policy
	// SmartMassRatio is the absorb threshold for PolicySmart
	SmartMassRatio float64

	// Bounce reflects velocity when a body leaves Viewport
	Bounce   bool
	Viewport core.Viewport

	// MaxOrbit bounds each body's trail length
	MaxOrbit int
	// RadiusScale multiplies the larger radius in the overlap test
	RadiusScale float64
}

// DefaultConfig returns the compiled-in configuration with absorb policy
func DefaultConfig() Config {
	return Config{
		G:              parameter.G,
		Timestep:       parameter.Timestep,
		Policy:         physics.PolicyAbsorb,
		SmartMassRatio: parameter.SmartMassRatio,
		Viewport: core.Viewport{
			Width:  parameter.ViewWidth,
			Height: parameter.ViewHeight,
			Scale:  parameter.ViewScale,
		},
		MaxOrbit:    parameter.MaxOrbit,
		RadiusScale: parameter.RadiusScale,
	}
}

// Validate checks numeric ranges
func (c Config) Validate() error {
	switch {
	case !vmath.Finite(c.G) || c.G < 0:
		return errors.Wrapf(ErrInvalidConfig, "gravitational constant %g", c.G)
	case !vmath.Finite(c.Timestep) || c.Timestep <= 0:
		return errors.Wrapf(ErrInvalidConfig, "timestep %g", c.Timestep)
	case c.Policy > physics.PolicyNone:
		return errors.Wrapf(ErrInvalidConfig, "policy %d", c.Policy)
	case !vmath.Finite(c.SmartMassRatio) || c.SmartMassRatio <= 0:
		return errors.Wrapf(ErrInvalidConfig, "smart mass ratio %g", c.SmartMassRatio)
	case c.MaxOrbit < 0:
		return errors.Wrapf(ErrInvalidConfig, "max orbit %d", c.MaxOrbit)
	case !vmath.Finite(c.RadiusScale) || c.RadiusScale < 0:
		return errors.Wrapf(ErrInvalidConfig, "radius scale %g", c.RadiusScale)
	case c.Bounce && (c.Viewport.Width <= 0 || c.Viewport.Height <= 0 || !(c.Viewport.Scale > 0)):
		return errors.Wrapf(ErrInvalidConfig, "bounce viewport %+v", c.Viewport)
	}
	return nil
}

// Environment returns the constants used by collision resolution
func (c Config) Environment() physics.Environment {
	return physics.Environment{
		G:              c.G,
		Timestep:       c.Timestep,
		SmartMassRatio: c.SmartMassRatio,
	}
}
