package core

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/vmath"
)

// Construction errors
var (
	ErrInvalidMass   = errors.New("mass must be positive")
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrNonFinite     = errors.New("value is not finite")
)

// BodyID is a stable per-run handle; zero means not yet registered with a simulation
type BodyID uint64

// Body is a simulated disc mass
type Body struct {
	ID BodyID
	Kinetic

	Radius float64 // meters
	Mass   float64 // kilograms
	Color  RGB

	Orbit Trail

	// DivisionCooldown counts down each tick; the body may split once it reaches zero
	DivisionCooldown int
}

// NewBody creates a body at rest from astronomical units and Earth masses
func NewBody(x, y, radius, mass float64, color RGB) (*Body, error) {
	return NewBodySI(
		r2.Vec{X: x * parameter.AU, Y: y * parameter.AU},
		r2.Vec{},
		radius*parameter.AU,
		mass*parameter.EarthMass,
		color,
	)
}

// NewBodySI creates a body from meters, meters per second and kilograms
func NewBodySI(pos, vel r2.Vec, radius, mass float64, color RGB) (*Body, error) {
	if !vmath.IsFinite(pos) || !vmath.IsFinite(vel) {
		return nil, errors.Wrapf(ErrNonFinite, "position %v velocity %v", pos, vel)
	}
	if !vmath.Finite(mass) || !vmath.Finite(radius) {
		return nil, errors.Wrapf(ErrNonFinite, "mass %g radius %g", mass, radius)
	}
	if mass <= 0 {
		return nil, errors.Wrapf(ErrInvalidMass, "got %g", mass)
	}
	if radius <= 0 {
		return nil, errors.Wrapf(ErrInvalidRadius, "got %g", radius)
	}

	return &Body{
		Kinetic:          Kinetic{Pos: pos, Vel: vel},
		Radius:           radius,
		Mass:             mass,
		Color:            color,
		DivisionCooldown: parameter.DivisionCooldown,
	}, nil
}

// Validate reports whether the body still satisfies construction invariants
func (b *Body) Validate() error {
	if b == nil {
		return errors.New("nil body")
	}
	if !vmath.IsFinite(b.Pos) || !vmath.IsFinite(b.Vel) {
		return errors.Wrapf(ErrNonFinite, "body %d kinetic state", b.ID)
	}
	if !(b.Mass > 0) || math.IsInf(b.Mass, 0) {
		return errors.Wrapf(ErrInvalidMass, "body %d mass %g", b.ID, b.Mass)
	}
	if !(b.Radius > 0) || math.IsInf(b.Radius, 0) {
		return errors.Wrapf(ErrInvalidRadius, "body %d radius %g", b.ID, b.Radius)
	}
	return nil
}

// CanDivide reports whether the split cooldown has expired
func (b *Body) CanDivide() bool {
	return b.DivisionCooldown <= 0
}

// Fragment creates a child body inheriting color, with scaled mass and radius and a fresh cooldown
func (b *Body) Fragment(pos, vel r2.Vec, massFactor, radiusFactor float64) *Body {
	return &Body{
		Kinetic:          Kinetic{Pos: pos, Vel: vel},
		Radius:           b.Radius * radiusFactor,
		Mass:             b.Mass * massFactor,
		Color:            b.Color,
		DivisionCooldown: parameter.DivisionCooldown,
	}
}
