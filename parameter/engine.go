package parameter

import "time"

// Loop timing
const (
	// FrameInterval is the tick and render cadence (~60 FPS)
	FrameInterval = time.Second / 60

	// HeadlessTicks is the default tick count for non-interactive runs
	HeadlessTicks = 600
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Random colors
const (
	// ColorSeed seeds body colors not set by the scenario
	ColorSeed = 765
)
