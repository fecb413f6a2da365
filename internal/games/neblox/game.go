// Package neblox implements the platformer simulation: player physics,
// one-way platforms, patrolling enemies, the quiz-gated key and the door
// that advances to the next stage.
//
// The package is pure. It never sleeps, draws to a terminal or plays sound;
// the platform layer calls Step once per scheduler tick and reacts to the
// returned events.
package neblox

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/quiz"
	"github.com/vovakirdan/neblox/internal/stage"
)

// Title is the display name of the game.
const Title = "NEblox"

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted     Phase = iota // start screen
	PhaseRunning                     // simulation advancing
	PhaseAwaitingAnswer              // frozen on the quiz gate
	PhaseGameOver                    // terminal until Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HUD is the session state shown to the player.
type HUD struct {
	Score     int
	Lives     int
	HasKey    bool
	SoundOn   bool
	Stage     int // 1-based
	StageName string
	Phase     Phase
}

// GameOver reports whether the session has ended.
func (h HUD) GameOver() bool {
	return h.Phase == PhaseGameOver
}

// Game is one play session. It is not safe for concurrent use; the
// platform owns it from a single loop.
type Game struct {
	cfg    config.Config
	stages []stage.Stage
	bank   *quiz.Bank
	rng    *rand.Rand

	phase    Phase
	stageIdx int

	player    Player
	platforms []core.AABB
	enemies   []Enemy
	key       Key
	door      core.AABB

	score   int
	lives   int
	hasKey  bool
	soundOn bool

	pending   *quiz.Question
	gateArmed bool // false after a failed attempt until the player leaves the key

	tickCount uint64
	animTick  int
	runFrame  int

	events []Event
}

// New creates a game over the given stages and question pool.
// Call Reset before the first Step.
func New(cfg config.Config, stages []stage.Stage, bank *quiz.Bank) *Game {
	if len(stages) == 0 {
		stages = stage.Default()
	}
	if bank == nil {
		bank = quiz.Default()
	}
	return &Game{
		cfg:     cfg,
		stages:  stages,
		bank:    bank,
		rng:     rand.New(rand.NewSource(1)),
		soundOn: true,
	}
}

// Reset seeds the question draw and restarts the session.
// A zero seed uses the current time.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.Restart()
}

// Restart returns to the start screen with a fresh session: full lives,
// zero score, no key, first stage layout. It is the only way out of
// PhaseGameOver. The sound setting survives.
func (g *Game) Restart() {
	g.phase = PhaseNotStarted
	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.hasKey = false
	g.pending = nil
	g.tickCount = 0
	g.animTick = 0
	g.runFrame = 0
	g.events = nil
	g.loadStage(0)
}

// Start leaves the start screen. It reports whether the phase changed.
func (g *Game) Start() bool {
	if g.phase != PhaseNotStarted {
		return false
	}
	g.phase = PhaseRunning
	return true
}

// ToggleSound flips the sound flag and returns the new value.
func (g *Game) ToggleSound() bool {
	g.soundOn = !g.soundOn
	return g.soundOn
}

// SetSound sets the sound flag.
func (g *Game) SetSound(on bool) {
	g.soundOn = on
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// HUD returns the current session state.
func (g *Game) HUD() HUD {
	st := g.stages[g.stageIdx]
	return HUD{
		Score:     g.score,
		Lives:     g.lives,
		HasKey:    g.hasKey,
		SoundOn:   g.soundOn,
		Stage:     g.stageIdx + 1,
		StageName: st.Name,
		Phase:     g.phase,
	}
}

// Step advances the simulation by one tick scaled by dt (1.0 = one
// 60 fps frame). It is a no-op outside PhaseRunning, which is how the
// quiz gate freezes the world.
func (g *Game) Step(in core.InputFrame, dt float64) StepResult {
	g.events = nil
	if g.phase != PhaseRunning || dt <= 0 {
		return g.flush()
	}

	g.tickCount++

	g.applyIntent(in, dt)
	g.landOnPlatforms(dt)

	if g.clampToField() {
		g.loseLife()
		return g.flush()
	}

	g.patrolEnemies(dt)
	if g.resolveEnemyContacts() {
		return g.flush()
	}

	if g.touchKey() {
		return g.flush()
	}
	g.touchDoor()
	g.animate()

	return g.flush()
}

// loadStage installs stage idx: platforms, enemies, key, door and the
// player at its spawn. The key is untaken afterwards.
func (g *Game) loadStage(idx int) {
	st := g.stages[idx]
	g.stageIdx = idx

	g.platforms = make([]core.AABB, len(st.Platforms))
	for i, p := range st.Platforms {
		g.platforms[i] = p.AABB()
	}

	g.enemies = make([]Enemy, len(st.Enemies))
	for i, e := range st.Enemies {
		g.enemies[i] = Enemy{
			Box:   e.AABB(),
			Dir:   e.Dir,
			Speed: e.Speed * g.cfg.EnemySpeedScale,
			MinX:  e.MinX,
			MaxX:  e.MaxX,
		}
	}

	g.key = Key{Box: st.Key.AABB()}
	g.door = st.Door.AABB()
	g.gateArmed = true
	g.placePlayer(st.Spawn)
}

// placePlayer puts the player at p at rest.
func (g *Game) placePlayer(p stage.Point) {
	g.player = Player{
		Box:    core.Box(p.X, p.Y, g.cfg.Player.Width, g.cfg.Player.Height),
		Facing: 1,
	}
}

// touchDoor runs the stage transition when the player carries the key.
func (g *Game) touchDoor() {
	if !g.hasKey || !g.player.Box.Overlaps(g.door) {
		return
	}

	cleared := g.stageIdx + 1
	g.addScore(g.cfg.Scoring.Door)
	g.hasKey = false

	next := g.stageIdx + 1
	if next >= len(g.stages) {
		next = len(g.stages) - 1
	}
	g.loadStage(next)

	g.emit(Event{Kind: EventStageCleared, Stage: cleared, Next: next + 1})
}

// loseLife costs one life and either respawns the player or ends the session.
func (g *Game) loseLife() {
	g.lives--
	if g.lives < 0 {
		g.lives = 0
	}
	g.emit(Event{Kind: EventLifeLost, Lives: g.lives})

	if g.lives == 0 {
		g.phase = PhaseGameOver
		g.pending = nil
		g.emit(Event{Kind: EventGameOver, Score: g.score})
		return
	}

	g.placePlayer(g.stages[g.stageIdx].RespawnPoint())
	g.hasKey = false
	g.key.Taken = false
	g.gateArmed = true
	g.emit(Event{Kind: EventSound, Cue: core.CueHit})
}

// animate advances the run-cycle frame used by rendering.
func (g *Game) animate() {
	g.animTick++
	if g.animTick >= g.cfg.Timing.AnimTicks {
		g.animTick = 0
		g.runFrame = (g.runFrame + 1) % g.cfg.Timing.RunFrames
	}
}

func (g *Game) addScore(delta int) {
	g.score += delta
	g.emit(Event{Kind: EventScore, Delta: delta})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) flush() StepResult {
	r := StepResult{HUD: g.HUD(), Events: g.events}
	g.events = nil
	return r
}
