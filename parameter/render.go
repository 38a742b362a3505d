package parameter

// Virtual viewport in pixels; the terminal grid is mapped onto it
const (
	ViewWidth  = 2000
	ViewHeight = 1200

	// ViewScale converts meters to viewport pixels
	ViewScale = 0.1 / AU
)

// Terminal layout
const (
	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1

	// TrailGlyph draws orbit trail segments
	TrailGlyph = '·'

	// BodyGlyph fills body discs
	BodyGlyph = '█'

	// TrailTint is how far trail color is blended toward the body color
	TrailTint = 0.35

	// TrailMinBrightness is the brightness of the oldest trail segment
	TrailMinBrightness = 0.3
)
