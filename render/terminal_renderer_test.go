package render

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/core"
	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
	"github.com/lixenwraith/planet-sim/physics"
)

// testFrame uses a 200x60 viewport at 1 px per meter so a 100x30 area maps 2 px per cell
func testFrame() engine.Frame {
	return engine.Frame{
		Tick:        7,
		Policy:      physics.PolicyDivide,
		Viewport:    core.Viewport{Width: 200, Height: 60, Scale: 1},
		RadiusScale: 1,
		Bodies: []engine.BodyView{
			{
				ID:     1,
				Pos:    r2.Vec{X: 10, Y: 0},
				Radius: 0.1,
				Color:  core.RGB{R: 255, G: 60, B: 60},
				Orbit:  []r2.Vec{{X: -10, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}},
			},
		},
		Stats: engine.Stats{Tick: 7, Bodies: 1, TotalMass: parameter.EarthMass},
	}
}

func TestRenderFrameBodiesAndTrails(t *testing.T) {
	s := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(s)

	r.RenderFrame(testFrame(), false)

	if got := runeAt(s, 55, 15); got != parameter.BodyGlyph {
		t.Errorf("Expected body glyph at (55,15), got %q", got)
	}
	for x := 45; x < 55; x++ {
		if got := runeAt(s, x, 15); got != parameter.TrailGlyph {
			t.Errorf("Expected trail glyph at (%d,15), got %q", x, got)
		}
	}
	if got := runeAt(s, 44, 15); got != ' ' {
		t.Errorf("Expected empty cell before trail start, got %q", got)
	}
}

func TestRenderFrameTrailToggle(t *testing.T) {
	s := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(s)

	if r.ToggleTrails() {
		t.Fatal("Expected trails off after first toggle")
	}
	r.RenderFrame(testFrame(), false)

	if got := runeAt(s, 47, 15); got != ' ' {
		t.Errorf("Expected no trail when disabled, got %q", got)
	}
	if got := runeAt(s, 55, 15); got != parameter.BodyGlyph {
		t.Errorf("Expected body still drawn, got %q", got)
	}
	if status := rowText(s, 30, 100); !strings.Contains(status, "trails off") {
		t.Errorf("Expected status to report trails off, got %q", status)
	}
}

func TestRenderFrameStatusBar(t *testing.T) {
	s := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(s)

	r.RenderFrame(testFrame(), false)
	status := rowText(s, 30, 100)
	if !strings.HasPrefix(status, " RUNNING ") {
		t.Errorf("Expected running indicator, got %q", status)
	}
	for _, want := range []string{"tick 7", "bodies 1", "mass 1 EM", "policy divide"} {
		if !strings.Contains(status, want) {
			t.Errorf("Expected status to contain %q, got %q", want, status)
		}
	}

	r.RenderFrame(testFrame(), true)
	if status := rowText(s, 30, 100); !strings.HasPrefix(status, " PAUSED ") {
		t.Errorf("Expected paused indicator, got %q", status)
	}
}

func TestRendererResizeArea(t *testing.T) {
	s := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(s)

	if a := r.Area(); a.Width != 100 || a.Height != 30 {
		t.Errorf("Expected 100x30 area, got %+v", a)
	}

	r.Resize(40, 11)
	if a := r.Area(); a.Width != 40 || a.Height != 10 {
		t.Errorf("Expected 40x10 area after resize, got %+v", a)
	}
}

func TestToCellOffscreenIsBounded(t *testing.T) {
	s := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(s)
	f := testFrame()

	x, y := r.ToCell(f, r.Area(), r2.Vec{X: 1e300, Y: -1e300})
	if x != cellLimit || y != -cellLimit {
		t.Errorf("Expected clamped cell (%d,%d), got (%d,%d)", cellLimit, -cellLimit, x, y)
	}
}
