package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

const speakerBuffer = 100 * time.Millisecond

// SoundManager plays synthesized cues through the system speaker.
// All methods are safe to call before Initialize; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	musicOn     bool
	mixer       *beep.Mixer
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager from the audio config.
func NewSoundManager(cfg config.Audio) *SoundManager {
	return &SoundManager{
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  cfg.Volume,
		musicOn: cfg.Music,
		mixer:   &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: failed to open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// Play starts a one-shot cue. Muted or unknown cues are dropped.
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := CueSound(cue, sm.rate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences cues and pauses the background loop.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized || sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = muted
	speaker.Unlock()
}

// StartMusic starts or resumes the background loop.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicOn || sm.muted {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: MusicLoop(sm.rate, sm.volume)}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}
