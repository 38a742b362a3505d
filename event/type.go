package event

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventAbsorb is emitted when the heavier body swallows the lighter
	// Trigger: absorb or smart policy | Consumer: audio, log
	EventAbsorb EventType = iota

	// EventDivide is emitted when the heavier body splits into two children
	// Trigger: divide or smart policy | Consumer: audio, log
	EventDivide

	// EventDivideSuppressed is emitted when a split is blocked by cooldown
	// Trigger: divide or smart policy | Consumer: log
	EventDivideSuppressed
)

var typeNames = map[EventType]string{
	EventAbsorb:           "absorb",
	EventDivide:           "divide",
	EventDivideSuppressed: "divide-suppressed",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is a collision record produced during a tick
type Event struct {
	Type EventType
	Tick uint64

	Heavier core.BodyID
	Lighter core.BodyID
	// Children holds IDs assigned to split products
	Children []core.BodyID

	// Pos is where the heavier body was when the collision resolved
	Pos r2.Vec
}

func (e Event) String() string {
	switch e.Type {
	case EventAbsorb:
		return fmt.Sprintf("body %d absorbed body %d", e.Heavier, e.Lighter)
	case EventDivide:
		return fmt.Sprintf("body %d split into %v after touching body %d", e.Heavier, e.Children, e.Lighter)
	case EventDivideSuppressed:
		return fmt.Sprintf("body %d split suppressed by cooldown (touching body %d)", e.Heavier, e.Lighter)
	default:
		return e.Type.String()
	}
}
