package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns Euclidean distance between two points
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Angle returns the direction of b as seen from a, in radians
// Coincident points return 0
func Angle(a, b r2.Vec) float64 {
	d := r2.Sub(b, a)
	return math.Atan2(d.Y, d.X)
}

// Polar builds a vector from magnitude and angle
func Polar(magnitude, angle float64) r2.Vec {
	return r2.Vec{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.X, Y: v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(v r2.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: -v.Y}
}

// IsFinite reports whether both components are neither NaN nor infinite
func IsFinite(v r2.Vec) bool {
	return Finite(v.X) && Finite(v.Y)
}

// Finite reports whether f is neither NaN nor infinite
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
