package core

import "gonum.org/v1/gonum/spatial/r2"

// Trail is the ordered position history of a body, oldest first
type Trail struct {
	points []r2.Vec
}

// Push appends the newest point
func (t *Trail) Push(p r2.Vec) {
	t.points = append(t.points, p)
}

// Truncate drops the oldest points until at most max remain
func (t *Trail) Truncate(max int) {
	if max < 0 {
		max = 0
	}
	excess := len(t.points) - max
	if excess <= 0 {
		return
	}
	// Shift in place so the backing array is reused across ticks
	n := copy(t.points, t.points[excess:])
	t.points = t.points[:n]
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the trail, oldest first
func (t *Trail) Points() []r2.Vec {
	if len(t.points) == 0 {
		return nil
	}
	out := make([]r2.Vec, len(t.points))
	copy(out, t.points)
	return out
}
