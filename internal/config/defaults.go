package config

import (
	_ "embed"
)

//go:embed defaults/neblox.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/neblox.yaml and is the fallback when that fails to parse.
func DefaultConfig() Config {
	return Config{
		Field: Field{
			Width:      900,
			Height:     500,
			FallMargin: 100,
		},
		Physics: Physics{
			Gravity:     0.7,
			JumpImpulse: -12.5,
			RunSpeed:    3.2,
			LandEpsilon: 2,
			StompMargin: 12,
			StompBounce: -8,
		},
		Player: Player{
			Width:  48,
			Height: 64,
		},
		Scoring: Scoring{
			Stomp: 25,
			Key:   50,
			Door:  150,
		},
		Session: Session{
			Lives: 3,
		},
		Timing: Timing{
			FrameMS:    16.666,
			MaxFrameMS: 40,
			AnimTicks:  7,
			RunFrames:  4,
		},
		Input: Input{
			HoldMS:       90,
			FirstHoldMS:  550,
			JumpBufferMS: 120,
		},
		Audio: Audio{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			Music:      true,
		},
		EnemySpeedScale: 1.0,
	}
}
