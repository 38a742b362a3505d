package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/vmath"
)

// OutcomeKind identifies what a resolution did
type OutcomeKind uint8

const (
	// OutcomeNone means the pair is not resolved; gravity applies as usual
	OutcomeNone OutcomeKind = iota
	// OutcomeAbsorb merged the lighter body into the heavier
	OutcomeAbsorb
	// OutcomeDivide replaced the heavier body with two children
	OutcomeDivide
	// OutcomeSuppressed is a divide blocked by cooldown; gravity applies as usual
	OutcomeSuppressed
)

var outcomeNames = [...]string{
	OutcomeNone:       "none",
	OutcomeAbsorb:     "absorb",
	OutcomeDivide:     "divide",
	OutcomeSuppressed: "suppressed",
}

func (k OutcomeKind) String() string {
	if int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return "unknown"
}

// Outcome describes the mutation a collision requests, applied by the caller
type Outcome struct {
	Kind    OutcomeKind
	Heavier core.BodyID
	Lighter core.BodyID

	// Removed lists bodies leaving the live set
	Removed []core.BodyID
	// Added lists new bodies without IDs
	Added []*core.Body

	// Deltas applied to the heavier body
	MassDelta     float64
	RadiusDelta   float64
	VelocityDelta r2.Vec
}

// Resolved reports whether the outcome changes the body set
func (o Outcome) Resolved() bool {
	return o.Kind == OutcomeAbsorb || o.Kind == OutcomeDivide
}

// Overlaps tests distance < radiusScale * max(ra, rb)
// Only the larger radius counts; this is not a sum-of-radii test
func Overlaps(a, b *core.Body, radiusScale float64) bool {
	return OverlapsAt(a.Pos, a.Radius, b.Pos, b.Radius, radiusScale)
}

// OverlapsAt is Overlaps on explicit positions and radii
func OverlapsAt(pa r2.Vec, ra float64, pb r2.Vec, rb float64, radiusScale float64) bool {
	return vmath.Distance(pa, pb) < radiusScale*math.Max(ra, rb)
}

// Resolve computes the outcome of a collision without mutating either body
// Callers order the pair by mass before calling
func Resolve(policy Policy, heavier, lighter *core.Body, env Environment) Outcome {
	return ResolveAt(policy, heavier, lighter, heavier.Pos, lighter.Pos, env)
}

// ResolveAt is Resolve with the interaction positions given explicitly
// hp and lp feed the absorb impulse; split children are placed from the heavier body's current position
func ResolveAt(policy Policy, heavier, lighter *core.Body, hp, lp r2.Vec, env Environment) Outcome {
	switch policy {
	case PolicyAbsorb:
		return absorb(heavier, lighter, hp, lp, env)
	case PolicyDivide:
		return divide(heavier, lighter)
	case PolicySmart:
		if heavier.Mass/lighter.Mass >= env.SmartMassRatio {
			return absorb(heavier, lighter, hp, lp, env)
		}
		return divide(heavier, lighter)
	default:
		return Outcome{Kind: OutcomeNone, Heavier: heavier.ID, Lighter: lighter.ID}
	}
}

// absorb folds lighter into heavier. The impulse is one extra force application using the
// combined mass on the heavier side, with the lighter body at its collision position
func absorb(heavier, lighter *core.Body, hp, lp r2.Vec, env Environment) Outcome {
	merged := heavier.Mass + lighter.Mass
	f := ForceBetween(hp, merged, lp, lighter.Mass, env.G)

	return Outcome{
		Kind:          OutcomeAbsorb,
		Heavier:       heavier.ID,
		Lighter:       lighter.ID,
		Removed:       []core.BodyID{lighter.ID},
		MassDelta:     lighter.Mass,
		RadiusDelta:   lighter.Radius,
		VelocityDelta: r2.Scale(env.Timestep/merged, f),
	}
}

// divide replaces heavier with two quarter-mass children once its cooldown has expired
func divide(heavier, lighter *core.Body) Outcome {
	if !heavier.CanDivide() {
		return Outcome{Kind: OutcomeSuppressed, Heavier: heavier.ID, Lighter: lighter.ID}
	}

	p, v := heavier.Pos, heavier.Vel
	vf := parameter.SplitVelocityFactor

	first := heavier.Fragment(
		r2.Vec{X: parameter.SplitJitter * p.X, Y: p.Y},
		r2.Vec{X: -v.X * vf, Y: v.Y * vf},
		parameter.SplitMassFactor, parameter.SplitRadiusFactor,
	)
	second := heavier.Fragment(
		r2.Vec{X: p.X, Y: parameter.SplitJitter * p.Y},
		r2.Vec{X: v.X * vf, Y: -v.Y * vf},
		parameter.SplitMassFactor, parameter.SplitRadiusFactor,
	)

	return Outcome{
		Kind:    OutcomeDivide,
		Heavier: heavier.ID,
		Lighter: lighter.ID,
		Removed: []core.BodyID{heavier.ID},
		Added:   []*core.Body{first, second},
	}
}
