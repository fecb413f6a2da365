package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

func menuSend(m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuPlay(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 0)
	m, cmd := menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, MenuPlay, m.Choice())
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())
}

func TestMenuDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard, 0)
	assert.Equal(t, config.DifficultyHard, m.Difficulty())

	down := tea.KeyMsg{Type: tea.KeyDown}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	m, _ = menuSend(m, down, left, left, left)
	assert.Equal(t, config.DifficultyEasy, m.Difficulty())
	assert.Contains(t, m.View(), "Difficulty: < easy >")

	// enter on the difficulty row cycles instead of leaving
	m, cmd := menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())
}

func TestMenuScoresAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "", 900)
	assert.Contains(t, m.View(), "High score: 900")

	scores, cmd := menuSend(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, MenuScores, scores.Choice())

	down := tea.KeyMsg{Type: tea.KeyDown}
	quit, cmd := menuSend(m, down, down, down, down, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, MenuQuit, quit.Choice())
}
