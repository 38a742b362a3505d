package audio

import (
	"errors"

	"github.com/lixenwraith/planet-sim/event"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundAbsorb SoundType = iota // Low thump when a body is swallowed
	SoundDivide                  // Rising two-note blip when a body splits
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundAbsorb: "absorb",
	SoundDivide: "divide",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// SoundForEvent maps a collision event to its sound; suppressed splits are silent
func SoundForEvent(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventAbsorb:
		return SoundAbsorb, true
	case event.EventDivide:
		return SoundDivide, true
	default:
		return 0, false
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
