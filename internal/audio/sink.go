// Package audio turns the simulation's sound cues into synthesized audio.
//
// Nothing in the game depends on a sink actually producing sound: a muted
// sink, a missing audio device and the Silent sink all behave the same to
// the caller.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

// Sink plays cues and the background loop.
type Sink interface {
	Play(cue core.Cue)
	SetMuted(muted bool)
	StartMusic()
	StopMusic()
	Close()
}

// Silent is a Sink that discards everything.
type Silent struct{}

func (Silent) Play(core.Cue) {}
func (Silent) SetMuted(bool) {}
func (Silent) StartMusic() {}
func (Silent) StopMusic() {}
func (Silent) Close() {}

// Open returns a speaker-backed sink, or Silent when audio is disabled or
// the device cannot be opened.
func Open(cfg config.Audio, logger *log.Logger) Sink {
	if !cfg.Enabled {
		return Silent{}
	}

	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing silently", "err", err)
		}
		return Silent{}
	}
	return sm
}
