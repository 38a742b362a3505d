package engine

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/physics"
)

// BodyView is the render-facing copy of a live body
type BodyView struct {
	ID     core.BodyID
	Pos    r2.Vec
	Radius float64
	Color  core.RGB
	// Orbit is the trail, oldest first
	Orbit []r2.Vec
}

// Frame is an immutable snapshot handed to the renderer after a tick
type Frame struct {
	Tick     uint64
	Policy   physics.Policy
	Viewport core.Viewport
	// RadiusScale lets the renderer draw bodies at their collision size
	RadiusScale float64
	Bodies      []BodyView
	Stats       Stats
}

// Snapshot copies the state the renderer needs; safe to use while later ticks run
func (s *Simulation) Snapshot() Frame {
	views := make([]BodyView, len(s.bodies))
	for i, b := range s.bodies {
		views[i] = BodyView{
			ID:     b.ID,
			Pos:    b.Pos,
			Radius: b.Radius,
			Color:  b.Color,
			Orbit:  b.Orbit.Points(),
		}
	}

	return Frame{
		Tick:        s.tick,
		Policy:      s.cfg.Policy,
		Viewport:    s.cfg.Viewport,
		RadiusScale: s.cfg.RadiusScale,
		Bodies:      views,
		Stats:       s.Stats(),
	}
}
