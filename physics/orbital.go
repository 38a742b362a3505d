package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/vmath"
)

// OrbitalVelocity returns circular orbit speed sqrt(G*M/r)
func OrbitalVelocity(g, centralMass, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Sqrt(g * centralMass / radius)
}

// OrbitalInsert returns the velocity for a circular orbit of pos around center
// The result is relative to the center; add the center's velocity for a moving primary
func OrbitalInsert(center, pos r2.Vec, g, centralMass float64, clockwise bool) r2.Vec {
	radius := vmath.Distance(center, pos)
	if radius == 0 {
		return r2.Vec{}
	}

	speed := OrbitalVelocity(g, centralMass, radius)

	// Tangent is perpendicular to radius
	d := r2.Sub(pos, center)
	t := r2.Vec{X: -d.Y / radius, Y: d.X / radius}
	if clockwise {
		t = r2.Scale(-1, t)
	}

	return r2.Scale(speed, t)
}
