package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/vmath"
)

// Force returns the gravitational pull of b on a, pointing from a toward b
func Force(a, b *core.Body, g float64) r2.Vec {
	return ForceBetween(a.Pos, a.Mass, b.Pos, b.Mass, g)
}

// ForceBetween computes G*m1*m2/d² decomposed along the angle from p1 to p2
// Separation is clamped to parameter.MinSeparation so coincident points stay finite
func ForceBetween(p1 r2.Vec, m1 float64, p2 r2.Vec, m2 float64, g float64) r2.Vec {
	d := math.Max(vmath.Distance(p1, p2), parameter.MinSeparation)
	magnitude := g * m1 * m2 / (d * d)
	return vmath.Polar(magnitude, vmath.Angle(p1, p2))
}

// PotentialEnergy returns -G*m1*m2/d for a pair, with the same separation clamp as ForceBetween
func PotentialEnergy(a, b *core.Body, g float64) float64 {
	d := math.Max(vmath.Distance(a.Pos, b.Pos), parameter.MinSeparation)
	return -g * a.Mass * b.Mass / d
}

// KineticEnergy returns ½mv²
func KineticEnergy(b *core.Body) float64 {
	v := r2.Norm(b.Vel)
	return 0.5 * b.Mass * v * v
}
