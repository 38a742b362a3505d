package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/planet-sim/engine"
	"github.com/lixenwraith/planet-sim/parameter"
)

// cellLimit bounds projected cell coordinates so far-away bodies cannot overflow int math
const cellLimit = 1 << 24

// TerminalRenderer draws simulation frames onto a tcell screen
// The bottom StatusBarHeight rows hold the status bar; the rest is the viewport
type TerminalRenderer struct {
	screen     tcell.Screen
	width      int
	height     int
	showTrails bool
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:     screen,
		width:      w,
		height:     h,
		showTrails: true,
	}
}

// Resize updates the drawable size after a terminal resize event
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// ToggleTrails flips orbit trail drawing and returns the new state
func (r *TerminalRenderer) ToggleTrails() bool {
	r.showTrails = !r.showTrails
	return r.showTrails
}

// ShowTrails reports whether orbit trails are drawn
func (r *TerminalRenderer) ShowTrails() bool {
	return r.showTrails
}

// Area returns the cell region the viewport is mapped onto
func (r *TerminalRenderer) Area() Rect {
	return Rect{Width: r.width, Height: max(r.height-parameter.StatusBarHeight, 0)}
}

// RenderFrame draws trails, bodies and the status bar, then flushes the screen
func (r *TerminalRenderer) RenderFrame(f engine.Frame, paused bool) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	area := r.Area()
	if area.Width > 0 && area.Height > 0 && f.Viewport.Width > 0 && f.Viewport.Height > 0 {
		if r.showTrails {
			for _, b := range f.Bodies {
				r.drawTrail(f, area, b, bg)
			}
		}
		for _, b := range f.Bodies {
			r.drawBody(f, area, b, bg)
		}
	}

	r.drawStatusBar(f, paused)
	r.screen.Show()
}

// ToCell maps a world position to a cell in area via the frame's viewport projection
func (r *TerminalRenderer) ToCell(f engine.Frame, area Rect, p r2.Vec) (int, int) {
	px, py := f.Viewport.ProjectF(p)
	cx := math.Floor(math.Trunc(px) * float64(area.Width) / float64(f.Viewport.Width))
	cy := math.Floor(math.Trunc(py) * float64(area.Height) / float64(f.Viewport.Height))
	return area.X + clampCell(cx), area.Y + clampCell(cy)
}

func clampCell(v float64) int {
	if math.IsNaN(v) {
		return -cellLimit
	}
	return int(math.Max(-cellLimit, math.Min(cellLimit, v)))
}

// drawTrail draws the orbit tinted toward the body color, older segments fading out
func (r *TerminalRenderer) drawTrail(f engine.Frame, area Rect, b engine.BodyView, bg tcell.Style) {
	orbit := b.Orbit
	base := RgbTrail.Blend(b.Color, parameter.TrailTint)
	if len(orbit) == 1 {
		x, y := r.ToCell(f, area, orbit[0])
		if area.Contains(x, y) {
			r.screen.SetContent(x, y, parameter.TrailGlyph, nil, bg.Foreground(TcellColor(base)))
		}
		return
	}
	segments := float64(len(orbit) - 1)
	for i := 0; i+1 < len(orbit); i++ {
		fade := parameter.TrailMinBrightness + (1-parameter.TrailMinBrightness)*float64(i+1)/segments
		style := bg.Foreground(TcellColor(base.Scale(fade)))
		x0, y0 := r.ToCell(f, area, orbit[i])
		x1, y1 := r.ToCell(f, area, orbit[i+1])
		DrawLine(r.screen, area, x0, y0, x1, y1, parameter.TrailGlyph, style)
	}
}

func (r *TerminalRenderer) drawBody(f engine.Frame, area Rect, b engine.BodyView, bg tcell.Style) {
	cx, cy := r.ToCell(f, area, b.Pos)

	// Drawn at collision size: radius scale applies on screen too
	radiusPx := f.RadiusScale * b.Radius * f.Viewport.Scale
	rx := radiusPx * float64(area.Width) / float64(f.Viewport.Width)
	ry := radiusPx * float64(area.Height) / float64(f.Viewport.Height)

	FillCircle(r.screen, area, cx, cy, rx, ry, parameter.BodyGlyph, bg.Foreground(TcellColor(b.Color)))
}

func (r *TerminalRenderer) drawStatusBar(f engine.Frame, paused bool) {
	if r.height < parameter.StatusBarHeight || r.width <= 0 {
		return
	}
	y := r.height - parameter.StatusBarHeight
	barStyle := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	modeText, modeBg := " RUNNING ", RgbRunningBg
	if paused {
		modeText, modeBg = " PAUSED ", RgbPausedBg
	}
	x := r.drawText(0, y, modeText, barStyle.Background(modeBg).Foreground(RgbModeText))

	st := f.Stats
	trails := "on"
	if !r.showTrails {
		trails = "off"
	}
	info := fmt.Sprintf(" tick %d  bodies %d  mass %.4g EM  policy %s  trails %s ",
		st.Tick, st.Bodies, st.TotalMass/parameter.EarthMass, f.Policy, trails)
	x = r.drawText(x, y, info, barStyle)

	counters := fmt.Sprintf(" absorbed %d  split %d  blocked %d ", st.Absorptions, st.Divisions, st.Suppressed)
	x = r.drawText(x, y, counters, barStyle.Foreground(RgbCounterText))

	hint := " p pause  t trails  q quit "
	if hx := r.width - len(hint); hx > x {
		r.drawText(hx, y, hint, barStyle.Foreground(RgbHintText))
	}
}

// drawText writes s from x and returns the column after it, stopping at the screen edge
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
