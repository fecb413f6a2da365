package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/games/neblox"
	"github.com/vovakirdan/neblox/internal/quiz"
	"github.com/vovakirdan/neblox/internal/stage"
	"github.com/vovakirdan/neblox/internal/storage"
)

// recordingSink remembers what the model asked of the audio layer.
type recordingSink struct {
	mu      sync.Mutex
	played  []core.Cue
	muted   bool
	music   bool
	starts  int
	stopped int
}

func (s *recordingSink) Play(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.played = append(s.played, c)
}

func (s *recordingSink) SetMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = m
}

func (s *recordingSink) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = true
	s.starts++
}

func (s *recordingSink) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.music = false
	s.stopped++
}

func (s *recordingSink) Close() {}

// testStage spawns the player on flat ground; mods place the key or enemies.
func testStage(mods ...func(*stage.Stage)) stage.Stage {
	s := stage.Stage{
		ID:        "test",
		Name:      "Test",
		Spawn:     stage.Point{X: 100, Y: 366},
		Platforms: []stage.Box{{X: 0, Y: 430, W: 900, H: 70}},
		Key:       stage.Box{X: 600, Y: 100, W: 30, H: 30},
		Door:      stage.Box{X: 820, Y: 100, W: 48, H: 68},
	}
	for _, m := range mods {
		m(&s)
	}
	return s
}

// keyAtSpawn makes the first real tick open the quiz.
func keyAtSpawn(s *stage.Stage) {
	s.Key = stage.Box{X: 120, Y: 400, W: 30, H: 30}
}

// enemyAtSpawn costs a life on every real tick.
func enemyAtSpawn(s *stage.Stage) {
	s.Enemies = []stage.Patrol{{
		Box: stage.Box{X: 100, Y: 390, W: 40, H: 40}, Dir: 1, Speed: 1, MinX: 100, MaxX: 100,
	}}
}

type harness struct {
	t     *testing.T
	model Model
	sink  *recordingSink
	now   time.Time
}

func newHarness(t *testing.T, st stage.Stage, store *storage.Store) *harness {
	t.Helper()
	bank, err := quiz.NewBank([]quiz.Question{{Text: "Ibu kota Indonesia?", Answer: "Jakarta"}})
	require.NoError(t, err)

	sink := &recordingSink{}
	h := &harness{t: t, sink: sink, now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	h.model = NewModel(Options{
		Config:  config.DefaultConfig(),
		Stages:  []stage.Stage{st},
		Bank:    bank,
		Store:   store,
		Sink:    sink,
		Player:  "ayu",
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
	})
	h.model.now = func() time.Time { return h.now }
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.model = m
	return cmd
}

// tick advances one 60 fps frame.
func (h *harness) tick() {
	h.now = h.now.Add(16666 * time.Microsecond)
	h.send(TickMsg(h.now))
}

func (h *harness) phase() neblox.Phase {
	return h.model.Game().Phase()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnEnter(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	assert.Equal(t, neblox.PhaseNotStarted, h.phase())
	assert.Contains(t, h.model.View(), "Press ENTER to start")

	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.NotEmpty(t, h.model.RunID())
	assert.True(t, h.sink.music, "music starts with the run")
}

func TestModelMovementNeedsRunningGame(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	h.send(runeKey("d"))
	h.tick()
	h.tick()
	assert.Equal(t, 100.0, h.model.Game().Snapshot().Player.X, "no movement before start")

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick() // first tick only primes the clock
	h.send(runeKey("d"))
	h.tick()
	h.tick()
	assert.Greater(t, h.model.Game().Snapshot().Player.X, 100.0)
}

func TestModelMuteToggle(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	h.send(runeKey("m"))
	assert.False(t, h.model.Game().HUD().SoundOn)
	assert.True(t, h.sink.muted)
	assert.False(t, h.sink.music)

	h.send(runeKey("m"))
	assert.True(t, h.model.Game().HUD().SoundOn)
	assert.False(t, h.sink.muted)
	assert.True(t, h.sink.music, "unmuting a running game resumes music")
}

func TestModelMutedStartKeepsMusicOff(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	h.send(runeKey("m"))
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Zero(t, h.sink.starts)
	assert.True(t, h.sink.muted)
}

func TestModelQuizCorrectAnswer(t *testing.T) {
	h := newHarness(t, testStage(keyAtSpawn), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick()
	h.tick()
	require.Equal(t, neblox.PhaseAwaitingAnswer, h.phase())
	assert.Contains(t, h.model.View(), "Ibu kota Indonesia?")

	// keys go to the prompt, not to the game
	h.send(runeKey("m"))
	assert.True(t, h.model.Game().HUD().SoundOn)
	h.send(tea.KeyMsg{Type: tea.KeyBackspace})

	h.send(runeKey(" jakarta "))
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	hud := h.model.Game().HUD()
	assert.Equal(t, neblox.PhaseRunning, hud.Phase)
	assert.True(t, hud.HasKey)
	assert.Equal(t, 50, hud.Score)
	assert.Equal(t, []core.Cue{core.CuePickup}, h.sink.played)
}

func TestModelQuizWrongAnswerShowsToast(t *testing.T) {
	h := newHarness(t, testStage(keyAtSpawn), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick()
	h.tick()
	require.Equal(t, neblox.PhaseAwaitingAnswer, h.phase())

	h.send(runeKey("bandung"))
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.False(t, h.model.Game().HUD().HasKey)
	assert.Contains(t, h.model.View(), msgWrongAnswer)

	// standing on the key does not reopen the gate
	h.tick()
	assert.Equal(t, neblox.PhaseRunning, h.phase())

	// the toast fades
	h.now = h.now.Add(toastDuration)
	h.tick()
	assert.NotContains(t, h.model.View(), msgWrongAnswer)
}

func TestModelQuizEscCancels(t *testing.T) {
	h := newHarness(t, testStage(keyAtSpawn), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick()
	h.tick()
	require.Equal(t, neblox.PhaseAwaitingAnswer, h.phase())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, isQuit(cmd))
	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.False(t, h.model.Game().HUD().HasKey)
}

func TestModelGameOverAndRestart(t *testing.T) {
	h := newHarness(t, testStage(enemyAtSpawn), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	firstRun := h.model.RunID()

	h.tick()
	for i := 0; i < 3; i++ {
		h.tick()
	}
	require.Equal(t, neblox.PhaseGameOver, h.phase())
	assert.False(t, h.sink.music, "game over stops the music")
	assert.Contains(t, h.model.View(), "GAME OVER")

	// enter does nothing on the game over screen
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, neblox.PhaseGameOver, h.phase())

	h.send(runeKey("r"))
	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.Equal(t, 3, h.model.Game().HUD().Lives)
	assert.NotEqual(t, firstRun, h.model.RunID())
}

func TestModelRestartWhileRunning(t *testing.T) {
	h := newHarness(t, testStage(), nil)

	h.send(runeKey("r"))
	assert.Equal(t, neblox.PhaseNotStarted, h.phase(), "r does nothing before the game starts")

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	firstRun := h.model.RunID()
	h.tick()
	h.send(runeKey("d"))
	for i := 0; i < 10; i++ {
		h.tick()
	}
	require.Greater(t, h.model.Game().Snapshot().Player.X, 100.0)

	h.send(runeKey("r"))

	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.Equal(t, 100.0, h.model.Game().Snapshot().Player.X, "restart puts the player back at spawn")
	assert.NotEqual(t, firstRun, h.model.RunID())
}

func TestModelSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	h := newHarness(t, testStage(), store)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.model.bestStage = 2

	h.model.saveRun(0)
	h.model.saveRun(175)

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "empty runs are not recorded")
	assert.Equal(t, "ayu", runs[0].Player)
	assert.Equal(t, 175, runs[0].Score)
	assert.Equal(t, 2, runs[0].Stage)
	assert.Equal(t, h.model.RunID(), runs[0].RunID)
}

func TestModelQuitKeys(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	assert.True(t, isQuit(h.send(runeKey("q"))))
	assert.Empty(t, h.model.View())

	h = newHarness(t, testStage(keyAtSpawn), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.tick()
	h.tick()
	require.Equal(t, neblox.PhaseAwaitingAnswer, h.phase())
	assert.False(t, isQuit(h.send(runeKey("q"))), "q is typed into the prompt")
	assert.True(t, isQuit(h.send(tea.KeyMsg{Type: tea.KeyCtrlC})))
}

func TestModelResizeKeepsSession(t *testing.T) {
	h := newHarness(t, testStage(), nil)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	runID := h.model.RunID()

	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, neblox.PhaseRunning, h.phase())
	assert.Equal(t, runID, h.model.RunID())
	lines := strings.Split(h.model.View(), "\n")
	assert.Len(t, lines, 40)
}
