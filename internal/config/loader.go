package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxLives is the upper bound on session.lives.
const MaxLives = 3

// Load loads the game configuration.
// Search order: customPath -> ~/.neblox/configs/neblox.yaml -> ./configs/neblox.yaml -> embedded default.
// Files are merged over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range SearchPaths("neblox.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Width > c.Field.Width {
		errs = append(errs, errors.New("player is wider than the field"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 || c.Physics.StompBounce >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse and physics.stomp_bounce must be negative (upward)"))
	}
	if c.Session.Lives < 1 || c.Session.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("session.lives must be in [1, %d]", MaxLives))
	}
	if c.Scoring.Stomp < 0 || c.Scoring.Key < 0 || c.Scoring.Door < 0 {
		errs = append(errs, errors.New("scoring bonuses must not be negative"))
	}
	if c.Timing.AnimTicks < 1 || c.Timing.RunFrames < 1 {
		errs = append(errs, errors.New("timing.anim_ticks and timing.run_frames must be at least 1"))
	}
	if c.EnemySpeedScale <= 0 {
		errs = append(errs, errors.New("enemy_speed_scale must be positive"))
	}
	return errors.Join(errs...)
}

// FrameUnit is the frame length that maps to dt = 1.
func (t Timing) FrameUnit() time.Duration {
	return time.Duration(math.Round(t.FrameMS * float64(time.Millisecond)))
}

// MaxFrame is the elapsed-time cap per tick.
func (t Timing) MaxFrame() time.Duration {
	return time.Duration(math.Round(t.MaxFrameMS * float64(time.Millisecond)))
}

// SearchPaths returns the non-custom locations searched for a data file,
// in priority order.
func SearchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neblox", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
