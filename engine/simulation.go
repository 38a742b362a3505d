package engine

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/event"
	"github.com/lixenwraith/planet-sim/physics"
)

// Simulation owns the live body set and advances it one tick at a time
// Not safe for concurrent use; the caller serializes Tick, Add and Snapshot
type Simulation struct {
	cfg Config
	env physics.Environment

	bodies []*core.Body
	// start holds positions captured at the beginning of the current tick, aligned with bodies
	start  []r2.Vec
	tx     *LifecycleTransaction
	nextID core.BodyID

	tick     uint64
	counters counters
	events   *event.Queue
}

type counters struct {
	absorptions uint64
	divisions   uint64
	suppressed  uint64
}

// New validates cfg and the initial bodies and registers them in order
func New(cfg Config, bodies []*core.Body) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:    cfg,
		env:    cfg.Environment(),
		bodies: make([]*core.Body, 0, len(bodies)),
		tx:     newLifecycleTransaction(),
		events: event.NewQueue(),
	}
	for i, b := range bodies {
		if _, err := s.Add(b); err != nil {
			return nil, errors.Wrapf(err, "initial body %d", i)
		}
	}
	return s, nil
}

// Add registers a body between ticks and returns its assigned ID
func (s *Simulation) Add(b *core.Body) (core.BodyID, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	for _, existing := range s.bodies {
		if existing == b {
			return 0, errors.Errorf("body %d already registered", b.ID)
		}
	}
	b.ID = s.allocID()
	b.Orbit.Truncate(s.cfg.MaxOrbit)
	s.bodies = append(s.bodies, b)
	return b.ID, nil
}

func (s *Simulation) allocID() core.BodyID {
	s.nextID++
	return s.nextID
}

// Tick advances every live body by one timestep and resolves collisions
// Removals and split children are committed after all bodies present at the start of the tick were visited
func (s *Simulation) Tick() {
	s.tick++

	n := len(s.bodies)
	s.start = s.start[:0]
	for _, b := range s.bodies {
		s.start = append(s.start, b.Pos)
	}

	for i := 0; i < n; i++ {
		if s.tx.IsDestroyed(s.bodies[i].ID) {
			continue
		}
		s.update(i)
	}

	s.bodies = s.tx.Commit(s.bodies)
}

// update runs the neighbour scan, integration and bookkeeping for bodies[i]
func (s *Simulation) update(i int) {
	b := s.bodies[i]
	var net r2.Vec

	for j, other := range s.bodies {
		if other.ID == b.ID || s.tx.IsDestroyed(other.ID) {
			continue
		}

		if s.cfg.Policy != physics.PolicyNone && s.overlapping(i, j) {
			heavier, lighter := other, b
			hp, lp := s.start[j], s.start[i]
			if b.Mass > other.Mass {
				heavier, lighter = b, other
				hp, lp = lp, hp
			}

			// Impulse uses the same start-of-tick positions as overlap and gravity
			out := physics.ResolveAt(s.cfg.Policy, heavier, lighter, hp, lp, s.env)
			s.apply(out, heavier)

			if s.tx.IsDestroyed(b.ID) {
				// Consumed or split: no force, integration or trail this tick
				return
			}
			if out.Resolved() {
				// Neighbour left the live set and exerts no further pull
				continue
			}
		}

		net = r2.Add(net, physics.ForceBetween(s.start[i], b.Mass, s.start[j], other.Mass, s.cfg.G))
	}

	physics.Accelerate(&b.Kinetic, net, b.Mass, s.cfg.Timestep)
	if s.cfg.Bounce {
		physics.ReflectViewport(&b.Kinetic, s.cfg.Viewport)
	}
	physics.Advance(&b.Kinetic, s.cfg.Timestep)

	b.Orbit.Push(b.Pos)
	b.DivisionCooldown--
	b.Orbit.Truncate(s.cfg.MaxOrbit)
}

// overlapping runs the overlap test on start-of-tick positions with current radii
func (s *Simulation) overlapping(i, j int) bool {
	return physics.OverlapsAt(s.start[i], s.bodies[i].Radius, s.start[j], s.bodies[j].Radius, s.cfg.RadiusScale)
}

// apply mutates the heavier body, queues lifecycle operations and records the event
func (s *Simulation) apply(out physics.Outcome, heavier *core.Body) {
	ev := event.Event{
		Tick:    s.tick,
		Heavier: out.Heavier,
		Lighter: out.Lighter,
		Pos:     heavier.Pos,
	}

	switch out.Kind {
	case physics.OutcomeAbsorb:
		heavier.Mass += out.MassDelta
		heavier.Radius += out.RadiusDelta
		physics.ApplyImpulse(&heavier.Kinetic, out.VelocityDelta)
		s.counters.absorptions++
		ev.Type = event.EventAbsorb

	case physics.OutcomeDivide:
		for _, child := range out.Added {
			child.ID = s.allocID()
			s.tx.Spawn(child)
			ev.Children = append(ev.Children, child.ID)
		}
		s.counters.divisions++
		ev.Type = event.EventDivide

	case physics.OutcomeSuppressed:
		s.counters.suppressed++
		ev.Type = event.EventDivideSuppressed

	default:
		return
	}

	for _, id := range out.Removed {
		s.tx.Destroy(id)
	}
	s.events.Push(ev)
}

// Events returns the collision event queue, drained by the caller between ticks
func (s *Simulation) Events() *event.Queue {
	return s.events
}

// Config returns the configuration the simulation was created with
func (s *Simulation) Config() Config {
	return s.cfg
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Len returns the number of live bodies
func (s *Simulation) Len() int {
	return len(s.bodies)
}

// Body looks up a live body by ID
func (s *Simulation) Body(id core.BodyID) (*core.Body, bool) {
	for _, b := range s.bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Bodies returns the live bodies in update order; callers must not mutate them
func (s *Simulation) Bodies() []*core.Body {
	out := make([]*core.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}
