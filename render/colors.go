package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-sim/core"
)

// Fixed palette
var (
	RgbBackground  = tcell.NewRGBColor(10, 11, 20) // Near-black space
	RgbStatusBar   = tcell.NewRGBColor(30, 32, 48)
	RgbStatusText  = tcell.NewRGBColor(200, 200, 210)
	RgbRunningBg   = tcell.NewRGBColor(40, 120, 60)
	RgbPausedBg    = tcell.NewRGBColor(180, 110, 20)
	RgbModeText    = tcell.NewRGBColor(0, 0, 0)
	RgbHintText    = tcell.NewRGBColor(120, 120, 140)
	RgbCounterText = tcell.NewRGBColor(255, 200, 80)
)

// RgbTrail is the base orbit line color before tint and fade
var RgbTrail = core.RGBWhite

// TcellColor converts a body color to a terminal color
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
