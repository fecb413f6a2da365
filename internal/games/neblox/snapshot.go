package neblox

import "github.com/vovakirdan/neblox/internal/core"

// Pose is the player sprite to draw.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
)

// Snapshot is a value copy of everything a renderer needs for one frame.
// Mutating it does not affect the game.
type Snapshot struct {
	Tick uint64
	HUD  HUD

	Player    core.AABB
	Facing    int
	Pose      Pose
	RunFrame  int
	Platforms []core.AABB
	Enemies   []core.AABB
	Key       *core.AABB // nil once taken
	Door      core.AABB

	Question string // pending quiz text, empty when none
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		HUD:       g.HUD(),
		Player:    g.player.Box,
		Facing:    g.player.Facing,
		Pose:      g.pose(),
		RunFrame:  g.runFrame,
		Platforms: append([]core.AABB(nil), g.platforms...),
		Enemies:   make([]core.AABB, len(g.enemies)),
		Door:      g.door,
	}
	for i, e := range g.enemies {
		s.Enemies[i] = e.Box
	}
	if !g.key.Taken {
		k := g.key.Box
		s.Key = &k
	}
	if g.pending != nil {
		s.Question = g.pending.Text
	}
	return s
}

func (g *Game) pose() Pose {
	switch {
	case !g.player.Grounded:
		return PoseJump
	case g.player.VX != 0:
		return PoseRun
	default:
		return PoseIdle
	}
}
