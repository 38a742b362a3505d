package engine

import (
	"github.com/lixenwraith/planet-sim/physics"
)

// Stats summarizes the simulation after the last completed tick
type Stats struct {
	Tick        uint64
	Bodies      int
	TotalMass   float64
	Absorptions uint64
	Divisions   uint64
	Suppressed  uint64
}

// Stats computes the current summary
func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:        s.tick,
		Bodies:      len(s.bodies),
		Absorptions: s.counters.absorptions,
		Divisions:   s.counters.divisions,
		Suppressed:  s.counters.suppressed,
	}
	for _, b := range s.bodies {
		st.TotalMass += b.Mass
	}
	return st
}

// Energy returns total kinetic plus pairwise potential energy
// O(n²); intended for diagnostics, not per-frame use with large n
func (s *Simulation) Energy() float64 {
	var e float64
	for i, a := range s.bodies {
		e += physics.KineticEnergy(a)
		for _, b := range s.bodies[i+1:] {
			e += physics.PotentialEnergy(a, b, s.cfg.G)
		}
	}
	return e
}
