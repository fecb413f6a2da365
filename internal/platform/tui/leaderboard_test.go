package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neblox/internal/storage"
)

func TestLeaderboardWithoutStore(t *testing.T) {
	m := NewLeaderboardModel(nil, "", 80, 24)
	assert.Contains(t, m.View(), "No runs recorded yet")
}

func TestLeaderboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.Run{
		{Player: "ayu", Score: 125, Stage: 2},
		{Player: "budi", Score: 400, Stage: 3},
		{Player: "ayu", Score: 75, Stage: 1},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	m := NewLeaderboardModel(store, "ayu", 100, 30)
	require.Len(t, m.runs, 3)
	assert.Equal(t, "budi", m.runs[0].Player)
	assert.Contains(t, m.View(), "3 runs by 2 players")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(LeaderboardModel)
	require.Len(t, m.runs, 2)
	assert.Equal(t, 125, m.runs[0].Score)
	assert.Equal(t, viewMine, m.view)

	next, cmd := m.Update(runeKey("q"))
	m = next.(LeaderboardModel)
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestLeaderboardSwitchNeedsPlayer(t *testing.T) {
	m := NewLeaderboardModel(nil, "", 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewAll, next.(LeaderboardModel).view)
}
