package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/games/neblox"
)

// MenuChoice is what the title menu was left with.
type MenuChoice int

const (
	MenuQuit MenuChoice = iota
	MenuPlay
	MenuScores
)

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into difficulties
	highScore  int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a title menu. highScore is shown under the title
// when positive.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, highScore int) MenuModel {
	m := MenuModel{
		difficulty: 1,
		highScore:  highScore,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < int(itemQuit) {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItem(m.cursor) == itemDifficulty && m.difficulty > 0 {
			m.difficulty--
		}

	case MenuActionRight:
		if menuItem(m.cursor) == itemDifficulty && m.difficulty < len(difficulties)-1 {
			m.difficulty++
		}

	case MenuActionScores:
		m.choice = MenuScores
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItem(m.cursor) {
		case itemPlay:
			m.choice = MenuPlay
			return m, tea.Quit
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		case itemScores:
			m.choice = MenuScores
			return m, tea.Quit
		case itemQuit:
			m.choice = MenuQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.Join(strings.Split(strings.ToUpper(neblox.Title), ""), " ")), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", difficulties[m.difficulty]),
		"High scores",
		"Quit",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = menuActive.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns how the menu was left.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
}

// RunMenu runs the title menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, highScore int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, highScore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: preset}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
