package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 0.5
)

// Absorb sound: low saw thump
const (
	AbsorbSoundFreq     = 70.0
	AbsorbSoundDuration = 180 * time.Millisecond
	AbsorbSoundAttack   = 5 * time.Millisecond
	AbsorbSoundRelease  = 150 * time.Millisecond
)

// Divide sound: two rising sine notes
const (
	DivideSoundNote1Freq     = 523.25 // C5
	DivideSoundNote2Freq     = 783.99 // G5
	DivideSoundNoteDuration  = 60 * time.Millisecond
	DivideSoundAttack        = 3 * time.Millisecond
	DivideSoundNoteRelease   = 40 * time.Millisecond
	DivideSoundHarmonicLevel = 0.3
)
