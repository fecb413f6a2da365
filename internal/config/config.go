// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

// Config contains all tunables of the simulation and its platform adapters.
type Config struct {
	Field   Field   `yaml:"field"`
	Physics Physics `yaml:"physics"`
	Player  Player  `yaml:"player"`
	Scoring Scoring `yaml:"scoring"`
	Session Session `yaml:"session"`
	Timing  Timing  `yaml:"timing"`
	Input   Input   `yaml:"input"`
	Audio   Audio   `yaml:"audio"`

	// EnemySpeedScale multiplies every enemy patrol speed. Set by presets.
	EnemySpeedScale float64 `yaml:"enemy_speed_scale"`
}

// Field is the playfield in world units.
type Field struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallMargin float64 `yaml:"fall_margin"` // how far below the field a fall costs a life
}

// Physics holds per-tick constants at dt = 1.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	RunSpeed    float64 `yaml:"run_speed"`
	LandEpsilon float64 `yaml:"land_epsilon"`
	StompMargin float64 `yaml:"stomp_margin"`
	StompBounce float64 `yaml:"stomp_bounce"`
}

// Player is the player's collision box size.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Scoring lists the fixed bonuses.
type Scoring struct {
	Stomp int `yaml:"stomp"`
	Key   int `yaml:"key"`
	Door  int `yaml:"door"`
}

// Session holds lifecycle limits.
type Session struct {
	Lives int `yaml:"lives"`
}

// Timing controls the frame clock and animation.
type Timing struct {
	FrameMS    float64 `yaml:"frame_ms"`     // frame length that maps to dt = 1
	MaxFrameMS float64 `yaml:"max_frame_ms"` // elapsed-time cap per tick
	AnimTicks  int     `yaml:"anim_ticks"`   // ticks per run frame
	RunFrames  int     `yaml:"run_frames"`
}

// Input controls the held-key emulation for terminals without key-up events.
type Input struct {
	HoldMS       int `yaml:"hold_ms"`        // how long a press keeps an action held
	FirstHoldMS  int `yaml:"first_hold_ms"`  // longer window before key auto-repeat starts
	JumpBufferMS int `yaml:"jump_buffer_ms"` // jump stays requested this long after a press
}

// Audio controls the synthesized cue sink.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
	Music      bool    `yaml:"music"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// EnemySpeedScaleForPreset returns the enemy speed multiplier for a preset.
func EnemySpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.35
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config for a difficulty preset.
// An empty preset leaves the file's value alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.EnemySpeedScale = EnemySpeedScaleForPreset(preset)
}
