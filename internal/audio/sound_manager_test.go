package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(config.DefaultConfig().Audio)

	assert.NotPanics(t, func() {
		sm.Play(core.CuePickup)
		sm.StartMusic()
		sm.SetMuted(true)
		sm.StopMusic()
		sm.Close()
	})
	assert.True(t, sm.muted, "mute flag is kept before initialization")
}

func TestOpenDisabledIsSilent(t *testing.T) {
	cfg := config.DefaultConfig().Audio
	cfg.Enabled = false

	sink := Open(cfg, nil)

	assert.IsType(t, Silent{}, sink)
}

func TestSilentSink(t *testing.T) {
	var sink Sink = Silent{}
	assert.NotPanics(t, func() {
		sink.Play(core.CueHit)
		sink.SetMuted(true)
		sink.StartMusic()
		sink.StopMusic()
		sink.Close()
	})
}
