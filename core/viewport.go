package core

import "gonum.org/v1/gonum/spatial/r2"

// Viewport maps world meters onto a virtual pixel plane centered on the origin
type Viewport struct {
	Width  int
	Height int
	// Scale is pixels per meter
	Scale float64
}

// Project converts a world position to viewport pixels
func (v Viewport) Project(p r2.Vec) (x, y int) {
	fx, fy := v.ProjectF(p)
	return int(fx), int(fy)
}

// ProjectF is Project without the integer truncation, safe for positions far off the plane
func (v Viewport) ProjectF(p r2.Vec) (x, y float64) {
	return p.X*v.Scale + float64(v.Width)/2, p.Y*v.Scale + float64(v.Height)/2
}

// Contains reports whether a projected pixel lies strictly inside the viewport on each axis
func (v Viewport) Contains(x, y int) (insideX, insideY bool) {
	return x > 0 && x < v.Width, y > 0 && y < v.Height
}
