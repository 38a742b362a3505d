package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/vmath"
)

// Integrate performs semi-implicit Euler: v = v + F/m*dt; p = p + v*dt
func Integrate(k *core.Kinetic, force r2.Vec, mass, dt float64) {
	Accelerate(k, force, mass, dt)
	Advance(k, dt)
}

// Accelerate applies net force to velocity
func Accelerate(k *core.Kinetic, force r2.Vec, mass, dt float64) {
	k.Vel = r2.Add(k.Vel, r2.Scale(dt/mass, force))
}

// Advance moves position by the current velocity
func Advance(k *core.Kinetic, dt float64) {
	k.Pos = r2.Add(k.Pos, r2.Scale(dt, k.Vel))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, dv r2.Vec) {
	k.Vel = r2.Add(k.Vel, dv)
}

// ReflectViewport negates each velocity component whose projected coordinate is outside the viewport
// Position is not clamped, so a body may overshoot before turning back
func ReflectViewport(k *core.Kinetic, view core.Viewport) bool {
	x, y := view.Project(k.Pos)
	insideX, insideY := view.Contains(x, y)
	if !insideX {
		k.Vel = vmath.ReflectAxisX(k.Vel)
	}
	if !insideY {
		k.Vel = vmath.ReflectAxisY(k.Vel)
	}
	return !insideX || !insideY
}
