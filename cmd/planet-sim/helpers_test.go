package main

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/engine"
)

// newCollidingSim returns two overlapping bodies under G=1, dt=1 and absorb policy
func newCollidingSim(t *testing.T) *engine.Simulation {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.G = 1
	cfg.Timestep = 1
	cfg.RadiusScale = 1

	var bodies []*core.Body
	for _, spec := range []struct{ x, mass float64 }{{0, 10}, {0.5, 1}} {
		b, err := core.NewBodySI(r2.Vec{X: spec.x}, r2.Vec{}, 1, spec.mass, core.RGBWhite)
		if err != nil {
			t.Fatal(err)
		}
		bodies = append(bodies, b)
	}

	sim, err := engine.New(cfg, bodies)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}
