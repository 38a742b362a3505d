package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/planet-sim/parameter"
)

// SoundManager plays collision sound effects through a single speaker mixer
// All methods are safe to call before Initialize or after a failed Initialize; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]uint64
}

// NewSoundManager creates a sound manager with cfg, or the environment config when nil
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = LoadAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; returns ErrAudioDisabled when disabled by config
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return errors.Wrapf(ErrUnknownSound, "type %d", st)
	}
	if !sm.initialized {
		return nil
	}

	// The mixer is read by the speaker goroutine under its own lock
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
	return nil
}

// Played returns how many times st was queued since Initialize
func (sm *SoundManager) Played(st SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
