package vmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b r2.Vec
		want float64
	}{
		{"same point", r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}, 0},
		{"axis", r2.Vec{}, r2.Vec{X: 3}, 3},
		{"3-4-5", r2.Vec{X: -1, Y: -1}, r2.Vec{X: 2, Y: 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngleCoincidentIsZero(t *testing.T) {
	p := r2.Vec{X: 5, Y: -2}
	if got := Angle(p, p); got != 0 {
		t.Errorf("Expected angle 0 for coincident points, got %f", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	a := r2.Vec{X: 1, Y: 2}
	b := r2.Vec{X: -3, Y: 7}

	v := Polar(Distance(a, b), Angle(a, b))
	want := r2.Sub(b, a)
	if math.Abs(v.X-want.X) > 1e-9 || math.Abs(v.Y-want.Y) > 1e-9 {
		t.Errorf("Polar reconstruction = %v, want %v", v, want)
	}
}

func TestReflectAxis(t *testing.T) {
	v := r2.Vec{X: 2, Y: -3}
	if got := ReflectAxisX(v); got != (r2.Vec{X: -2, Y: -3}) {
		t.Errorf("ReflectAxisX = %v", got)
	}
	if got := ReflectAxisY(v); got != (r2.Vec{X: 2, Y: 3}) {
		t.Errorf("ReflectAxisY = %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(r2.Vec{X: 1, Y: 2}) {
		t.Error("Expected finite vector")
	}
	if IsFinite(r2.Vec{X: math.NaN()}) {
		t.Error("Expected NaN to be rejected")
	}
	if IsFinite(r2.Vec{Y: math.Inf(-1)}) {
		t.Error("Expected -Inf to be rejected")
	}
}
