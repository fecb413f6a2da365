package neblox

import "github.com/vovakirdan/neblox/internal/core"

// Enemy is a patrolling hazard. It walks between MinX and MaxX and
// turns around at either bound.
type Enemy struct {
	Box   core.AABB
	Dir   int // -1 left, +1 right
	Speed float64
	MinX  float64
	MaxX  float64
}

// Key is the collectible that unlocks the door.
type Key struct {
	Box   core.AABB
	Taken bool
}

// patrol moves the enemy one tick and turns it at its bounds.
func (e *Enemy) patrol(dt float64) {
	e.Box.X += e.Speed * float64(e.Dir) * dt

	switch {
	case e.Dir < 0 && e.Box.X <= e.MinX:
		e.Box.X = e.MinX
		e.Dir = 1
	case e.Dir > 0 && e.Box.X >= e.MaxX:
		e.Box.X = e.MaxX
		e.Dir = -1
	}
}

func (g *Game) patrolEnemies(dt float64) {
	for i := range g.enemies {
		g.enemies[i].patrol(dt)
	}
}

// resolveEnemyContacts checks the player against every enemy, last first
// so a stomped enemy can be removed in place. It reports whether a life
// was lost, which ends the tick.
func (g *Game) resolveEnemyContacts() (lostLife bool) {
	p := &g.player
	margin := g.cfg.Physics.StompMargin

	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := g.enemies[i]
		if !p.Box.Overlaps(e.Box) {
			continue
		}

		if p.VY > 0 && p.Box.Bottom() <= e.Box.Y+margin {
			g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
			p.VY = g.cfg.Physics.StompBounce
			g.addScore(g.cfg.Scoring.Stomp)
			g.emit(Event{Kind: EventSound, Cue: core.CueStomp})
			continue
		}

		g.loseLife()
		return true
	}
	return false
}
