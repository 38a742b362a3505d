package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/planet-sim/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release tail ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or negative gain is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateAbsorbSound generates a short low saw thump
func CreateAbsorbSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.AbsorbSoundFreq, parameter.AbsorbSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.AbsorbSoundDuration, parameter.AbsorbSoundAttack, parameter.AbsorbSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundAbsorb] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateDivideSound generates a rising two-note blip (C5 then G5) with an octave harmonic
func CreateDivideSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64) beep.Streamer {
		fund := NewEnvelope(
			NewOscillator(freq, parameter.DivideSoundNoteDuration, WaveSine, rate),
			parameter.DivideSoundNoteDuration, parameter.DivideSoundAttack, parameter.DivideSoundNoteRelease, rate,
		)
		over := NewEnvelope(
			NewOscillator(2*freq, parameter.DivideSoundNoteDuration, WaveSine, rate),
			parameter.DivideSoundNoteDuration, parameter.DivideSoundAttack, parameter.DivideSoundNoteRelease, rate,
		)
		return beep.Mix(
			newVolume(fund, 1-parameter.DivideSoundHarmonicLevel),
			newVolume(over, parameter.DivideSoundHarmonicLevel),
		)
	}

	sequence := beep.Seq(note(parameter.DivideSoundNote1Freq), note(parameter.DivideSoundNote2Freq))

	vol := cfg.EffectVolumes[SoundDivide] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// GetSoundEffect returns the streamer for soundType, or nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundAbsorb:
		return CreateAbsorbSound(cfg)
	case SoundDivide:
		return CreateDivideSound(cfg)
	default:
		return nil
	}
}
