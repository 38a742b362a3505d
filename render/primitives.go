package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Rect is a cell-space clip region
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// FillCircle fills every cell whose center lies within the ellipse of radii rx, ry around (cx, cy)
// The center cell is always drawn so sub-cell bodies stay visible
func FillCircle(s tcell.Screen, clip Rect, cx, cy int, rx, ry float64, ch rune, style tcell.Style) {
	if clip.Contains(cx, cy) {
		s.SetContent(cx, cy, ch, nil, style)
	}
	if !(rx > 0) || !(ry > 0) {
		return
	}

	// Iterate only the part of the bounding box inside clip
	minY := max(clip.Y, cy-int(math.Ceil(ry)))
	maxY := min(clip.Y+clip.Height-1, cy+int(math.Ceil(ry)))
	minX := max(clip.X, cx-int(math.Ceil(rx)))
	maxX := min(clip.X+clip.Width-1, cx+int(math.Ceil(rx)))

	for y := minY; y <= maxY; y++ {
		dy := float64(y-cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := float64(x-cx) / rx
			if dx*dx+dy*dy <= 1 {
				s.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

// DrawLine draws a Bresenham line from (x0, y0) to (x1, y1), clipped to clip
// Endpoints far outside the clip are cut first so the walk stays bounded by the clip size
func DrawLine(s tcell.Screen, clip Rect, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	var ok bool
	x0, y0, x1, y1, ok = clipSegment(clip, x0, y0, x1, y1)
	if !ok {
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	for {
		if clip.Contains(x, y) {
			s.SetContent(x, y, ch, nil, style)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

// clipSegment trims a segment to clip with Liang-Barsky; ok is false when nothing is visible
func clipSegment(clip Rect, x0, y0, x1, y1 int) (int, int, int, int, bool) {
	if clip.Contains(x0, y0) && clip.Contains(x1, y1) {
		return x0, y0, x1, y1, true
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	minX, maxX := float64(clip.X), float64(clip.X+clip.Width-1)
	minY, maxY := float64(clip.Y), float64(clip.Y+clip.Height-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - minX},
		{dx, maxX - fx0},
		{-dy, fy0 - minY},
		{dy, maxY - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return int(math.Round(fx0 + t0*dx)), int(math.Round(fy0 + t0*dy)),
		int(math.Round(fx0 + t1*dx)), int(math.Round(fy0 + t1*dy)), true
}
