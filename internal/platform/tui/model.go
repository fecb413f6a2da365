package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/neblox/internal/audio"
	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/games/neblox"
	"github.com/vovakirdan/neblox/internal/quiz"
	"github.com/vovakirdan/neblox/internal/stage"
	"github.com/vovakirdan/neblox/internal/storage"
)

// Player-facing messages.
const (
	msgWrongAnswer  = "Jawaban salah! Coba lagi nanti."
	msgStageCleared = "Level selesai! Lanjut ke tantangan berikutnya."
	toastDuration   = 2 * time.Second
	modalMaxWidth   = 56
)

// Options configures a game session.
type Options struct {
	Config  config.Config
	Stages  []stage.Stage
	Bank    *quiz.Bank
	Store   *storage.Store // nil disables the leaderboard
	Sink    audio.Sink     // nil means Silent
	Logger  *log.Logger    // nil discards
	Player  string
	Muted   bool // start with sound off
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game      *neblox.Game
	screen    *core.Screen
	store     *storage.Store
	sink      audio.Sink
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      *HeldKeys
	clock     *core.FrameClock
	input     textinput.Model
	now       func() time.Time

	player     string
	runID      string
	bestStage  int
	toast      string
	toastUntil time.Time
	quitting   bool
}

// NewModel creates a model and resets the game to its start screen.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Sink == nil {
		opts.Sink = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "jawaban"
	ti.CharLimit = 64
	ti.Width = modalMaxWidth - 8

	game := neblox.New(opts.Config, opts.Stages, opts.Bank)
	game.Reset(opts.Runtime)
	if opts.Muted {
		game.SetSound(false)
	}
	opts.Sink.SetMuted(!game.HUD().SoundOn)

	timing := opts.Config.Timing
	return Model{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		store:     opts.Store,
		sink:      opts.Sink,
		logger:    opts.Logger,
		config:    opts.Runtime,
		clock:     core.NewFrameClock(timing.FrameUnit(), timing.MaxFrame()),
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(opts.Config.Input),
		input:     ti,
		now:       time.Now,
		player:    opts.Player,
		bestStage: 1,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.game.Phase() == neblox.PhaseAwaitingAnswer {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.game.Phase() == neblox.PhaseAwaitingAnswer {
		return m.handleQuizKey(msg)
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch {
	case IsMovement(action):
		if m.game.Phase() == neblox.PhaseRunning {
			m.held.Press(action, m.now())
		}
	case action == core.ActionConfirm:
		if m.game.Start() {
			m.startRun()
		}
	case action == core.ActionRestart:
		if phase := m.game.Phase(); phase == neblox.PhaseRunning || phase == neblox.PhaseGameOver {
			m.game.Restart()
			m.game.Start()
			m.startRun()
		}
	case action == core.ActionMute:
		m.toggleSound()
	}

	return m, nil
}

// handleQuizKey routes keys to the answer prompt.
func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		answer := m.input.Value()
		m.closePrompt()
		cmd := m.apply(m.game.SubmitAnswer(answer), m.now())
		return m, cmd
	case tea.KeyEsc:
		m.closePrompt()
		cmd := m.apply(m.game.CancelQuiz(), m.now())
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize processes window resize events. The session is kept; the
// world is rescaled on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.input.Width = max(min(modalMaxWidth, msg.Width)-8, 1)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := m.clock.Advance(now)
	cmd := m.apply(m.game.Step(m.held.Frame(now), dt), now)

	if m.toast != "" && !now.Before(m.toastUntil) {
		m.toast = ""
	}

	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// apply reacts to the side effects of a simulation call.
func (m *Model) apply(res neblox.StepResult, now time.Time) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range res.Events {
		switch e.Kind {
		case neblox.EventSound:
			m.sink.Play(e.Cue)
		case neblox.EventQuizOpened:
			m.held.Clear()
			m.input.Reset()
			cmd = m.input.Focus()
		case neblox.EventQuizFailed:
			m.showToast(msgWrongAnswer, now)
		case neblox.EventStageCleared:
			m.bestStage = max(m.bestStage, e.Next)
			m.showToast(msgStageCleared, now)
			m.logger.Debug("stage cleared", "stage", e.Stage, "next", e.Next)
		case neblox.EventLifeLost:
			m.held.Clear()
		case neblox.EventGameOver:
			m.sink.StopMusic()
			m.held.Clear()
			m.saveRun(e.Score)
		}
	}
	return cmd
}

// startRun prepares the platform side of a fresh run.
func (m *Model) startRun() {
	m.runID = storage.NewRunID()
	m.bestStage = 1
	m.toast = ""
	m.clock.Reset()
	m.held.Clear()
	if m.game.HUD().SoundOn {
		m.sink.StartMusic()
	}
	m.logger.Info("run started", "run", m.runID, "player", m.player)
}

// toggleSound flips the sound setting and keeps the sink in step.
func (m *Model) toggleSound() {
	on := m.game.ToggleSound()
	m.sink.SetMuted(!on)
	switch {
	case !on:
		m.sink.StopMusic()
	case m.game.Phase() == neblox.PhaseRunning:
		m.sink.StartMusic()
	}
}

// saveRun records the finished run. Empty runs are not recorded.
func (m *Model) saveRun(score int) {
	m.logger.Info("game over", "run", m.runID, "player", m.player, "score", score, "stage", m.bestStage)
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		RunID:  m.runID,
		Player: m.player,
		Score:  score,
		Stage:  m.bestStage,
	})
	if err != nil {
		m.logger.Error("could not save run", "run", m.runID, "err", err)
	}
}

func (m *Model) showToast(text string, now time.Time) {
	m.toast = text
	m.toastUntil = now.Add(toastDuration)
}

func (m *Model) closePrompt() {
	m.input.Blur()
	m.input.Reset()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.sink.StopMusic()
	m.logger.Debug("session closed", "player", m.player)
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".neblox", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("neblox_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if q, ok := m.game.Pending(); ok {
		return m.viewQuiz(q)
	}

	if m.toast != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.toast, core.ColorBrightWhite)
	}
	return RenderScreen(m.screen)
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	modalHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// viewQuiz shows the HUD row above a centered answer prompt.
func (m Model) viewQuiz(q quiz.Question) string {
	w, h := m.screen.Width(), m.screen.Height()
	width := min(modalMaxWidth, w) - 6

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Kunci terkunci!"))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(q.Text, max(width, 10)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(modalHelpStyle.Render("enter: jawab  esc: batal"))

	hud := RenderScreen(m.screen)
	if i := strings.IndexByte(hud, '\n'); i >= 0 {
		hud = hud[:i]
	}

	body := lipgloss.Place(w, max(h-1, 1), lipgloss.Center, lipgloss.Center, modalStyle.Render(b.String()))
	return hud + "\n" + body
}

// Game exposes the session for inspection.
func (m Model) Game() *neblox.Game {
	return m.game
}

// RunID returns the identifier of the current run, empty before the first start.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
