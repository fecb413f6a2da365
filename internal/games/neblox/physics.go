package neblox

import "github.com/vovakirdan/neblox/internal/core"

// Player is the controllable character.
type Player struct {
	Box      core.AABB
	VX, VY   float64
	Facing   int // -1 left, +1 right
	Grounded bool
}

// applyIntent turns held input into velocity, then integrates.
// On the tick a jump starts, the impulse replaces gravity so the player
// leaves the ground with exactly the configured velocity.
func (g *Game) applyIntent(in core.InputFrame, dt float64) {
	p := &g.player
	phys := g.cfg.Physics

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -phys.RunSpeed
		p.Facing = -1
	case in.Has(core.ActionRight):
		p.VX = phys.RunSpeed
		p.Facing = 1
	default:
		p.VX = 0
	}

	jumped := false
	if in.Has(core.ActionJump) && p.Grounded {
		p.VY = phys.JumpImpulse
		p.Grounded = false
		jumped = true
	}
	if !jumped {
		p.VY += phys.Gravity * dt
	}

	p.Box.X += p.VX * dt
	p.Box.Y += p.VY * dt
}

// landOnPlatforms resolves top-surface landings only. A player rising
// through a platform, or walking into its side, passes through.
func (g *Game) landOnPlatforms(dt float64) {
	p := &g.player
	eps := g.cfg.Physics.LandEpsilon

	p.Grounded = false
	if p.VY < 0 {
		return
	}

	for _, pl := range g.platforms {
		if !p.Box.OverlapsX(pl) {
			continue
		}
		bottom := p.Box.Bottom()
		prevBottom := bottom - p.VY*dt
		if bottom > pl.Y && prevBottom <= pl.Y+eps {
			p.Box.Y = pl.Y - p.Box.H
			p.VY = 0
			p.Grounded = true
		}
	}
}

// clampToField keeps the player inside the horizontal bounds and reports
// whether it fell past the bottom margin.
func (g *Game) clampToField() (fell bool) {
	p := &g.player
	maxX := g.cfg.Field.Width - p.Box.W
	p.Box.X = core.ClampF(p.Box.X, 0, maxX)

	return p.Box.Y > g.cfg.Field.Height+g.cfg.Field.FallMargin
}
