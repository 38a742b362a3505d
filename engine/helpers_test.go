package engine

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
)

// NewTestBody builds a body in SI units or fails the test
func NewTestBody(t testing.TB, x, y, radius, mass float64) *core.Body {
	t.Helper()
	b, err := core.NewBodySI(r2.Vec{X: x, Y: y}, r2.Vec{}, radius, mass, core.RGBWhite)
	if err != nil {
		t.Fatalf("NewBodySI(%g, %g, %g, %g) failed: %v", x, y, radius, mass, err)
	}
	return b
}

// NewTestSimulation builds a simulation or fails the test
func NewTestSimulation(t testing.TB, cfg Config, bodies ...*core.Body) *Simulation {
	t.Helper()
	s, err := New(cfg, bodies)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// UnitConfig returns a config with G=1, dt=1 and radius scale 1 for hand-checkable numbers
func UnitConfig() Config {
	cfg := DefaultConfig()
	cfg.G = 1
	cfg.Timestep = 1
	cfg.RadiusScale = 1
	return cfg
}
