package neblox

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

// Minimum terminal size the world can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 14
)

// Glyphs
const (
	PlayerGlyph   = '█'
	EnemyGlyph    = '▓'
	GroundTop     = '▀'
	GroundFill    = '█'
	KeyGlyph      = '⚷'
	DoorFill      = '▒'
	HeartGlyph    = '♥'
	EmptyHeart    = '♡'
	PlayerEyeChar = '•'
)

// viewport maps world units to screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(fieldW, fieldH float64, dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()-1) / fieldH,
		top: 1,
	}
}

// rect converts a world box to the cells it covers, at least one cell.
func (v viewport) rect(b core.AABB) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

// Render draws the HUD, the world and any start or game-over overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	snap := g.Snapshot()
	view := newViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst)

	renderHUD(dst, snap.HUD)
	renderPlatforms(dst, view, snap.Platforms)
	renderDoor(dst, view, snap.Door, snap.HUD.HasKey)
	if snap.Key != nil {
		renderKey(dst, view, *snap.Key)
	}
	renderEnemies(dst, view, snap.Enemies)
	renderPlayer(dst, view, snap)
	renderOverlay(dst, snap.HUD)
}

// HUDLine formats the status row.
func HUDLine(h HUD) string {
	hearts := strings.Repeat(string(HeartGlyph), h.Lives) +
		strings.Repeat(string(EmptyHeart), max(0, config.MaxLives-h.Lives))

	key := "✘"
	if h.HasKey {
		key = "✔"
	}
	sound := "off"
	if h.SoundOn {
		sound = "on"
	}

	return fmt.Sprintf(" Score: %d  Lives: %s  Key: %s  Sound: %s  Stage %d: %s",
		h.Score, hearts, key, sound, h.Stage, h.StageName)
}

func renderHUD(dst *core.Screen, h HUD) {
	dst.DrawText(0, 0, HUDLine(h), core.ColorBrightWhite)
}

func renderPlatforms(dst *core.Screen, v viewport, platforms []core.AABB) {
	for _, p := range platforms {
		r := v.rect(p)
		dst.DrawHLine(r.X, r.Y, r.W, GroundTop, core.ColorGreen)
		if r.H > 1 {
			dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), GroundFill, core.ColorBrown)
		}
	}
}

func renderDoor(dst *core.Screen, v viewport, door core.AABB, unlocked bool) {
	r := v.rect(door)
	color := core.ColorOrange
	if unlocked {
		color = core.ColorBrightYellow
	}
	dst.DrawRect(r, DoorFill, color)
	if r.W >= 2 && r.H >= 2 {
		dst.DrawBox(r, color)
	}
}

func renderKey(dst *core.Screen, v viewport, key core.AABB) {
	r := v.rect(key)
	dst.SetColor(r.X+r.W/2, r.Y+r.H/2, KeyGlyph, core.ColorBrightYellow)
}

func renderEnemies(dst *core.Screen, v viewport, enemies []core.AABB) {
	for _, e := range enemies {
		dst.DrawRect(v.rect(e), EnemyGlyph, core.ColorRed)
	}
}

// runLegs are the bottom-row frames of the run cycle.
var runLegs = [...]string{"/\\", "||", "\\/", "||"}

func renderPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	r := v.rect(snap.Player)
	dst.DrawRect(r, PlayerGlyph, core.ColorBrightCyan)

	eyeX := r.Right() - 1
	if snap.Facing < 0 {
		eyeX = r.X
	}
	dst.SetColor(eyeX, r.Y, PlayerEyeChar, core.ColorBrightWhite)

	if r.H < 2 {
		return
	}
	legs := "||"
	switch snap.Pose {
	case PoseRun:
		legs = runLegs[snap.RunFrame%len(runLegs)]
	case PoseJump:
		legs = "\\/"
	}
	dst.DrawText(r.X+(r.W-2)/2, r.Bottom()-1, legs, core.ColorCyan)
}

func renderOverlay(dst *core.Screen, h HUD) {
	switch h.Phase {
	case PhaseNotStarted:
		drawCenteredBox(dst, Title, "Press ENTER to start", core.ColorBrightCyan)
	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", h.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawText(boxX+(boxW-tw)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle, core.ColorDefault)
}
