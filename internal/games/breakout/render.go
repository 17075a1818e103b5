package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs alternate by column so neighbours stay distinct.
var BrickGlyphs = []rune{'█', '▓'}

const hudHeight = 2

// layout maps the world onto the screen area inside the border, below the HUD.
func layout(cfg config.BreakoutConfig, screenW, screenH int) core.Viewport {
	area := core.NewRect(1, hudHeight+1, max(screenW-2, 1), max(screenH-hudHeight-2, 1))
	return core.NewViewport(cfg.World.Width, cfg.World.Height, area)
}

// Render draws the wall, the paddle, balls and pickups.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.view = layout(g.cfg, dst.Width(), dst.Height())

	hud := fmt.Sprintf(" BREAKOUT  Score: %d  Lives: %s  Level: %d%s",
		g.session.Score(), strings.Repeat("♥", g.session.Lives()), g.session.Level(), g.effectsLabel())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	area := g.view.Area
	if area.W < 30 || area.H < 12 {
		dst.DrawOverlay("Window too small", "Need at least 32x16")
		return
	}
	dst.DrawBoxColor(core.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2), core.ColorGray)

	for i := range g.bricks {
		br := &g.bricks[i]
		if br.Visible {
			dst.DrawRectColor(g.view.CellRect(br.Box), BrickGlyphs[br.Col%len(BrickGlyphs)], br.Color)
		}
	}

	for _, p := range g.powerUps {
		r := g.view.CellRect(p.Box)
		if r.Y < area.Bottom() {
			dst.SetColor(r.X, r.Y, p.Type.Glyph(), core.ColorBrightCyan)
		}
	}

	dst.DrawRectColor(g.view.CellRect(g.paddleBox()), PaddleChar, core.ColorOrange)

	for _, b := range g.balls {
		r := g.view.CellRect(g.ballBox(b))
		if r.Y < area.Bottom() {
			dst.SetColor(r.X, r.Y, BallChar, core.ColorBrightWhite)
		}
	}

	switch g.phase.Phase() {
	case core.PhaseReady:
		dst.DrawOverlay("BREAKOUT", "Enter to launch  mouse or arrows to move")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "P resume  B menu")
	case core.PhaseGameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d  R restart  B menu", g.session.Score()))
	}
}

// effectsLabel lists running effects with the seconds left.
func (g *Game) effectsLabel() string {
	var sb strings.Builder
	if g.sched.Pending(effectBigger) {
		fmt.Fprintf(&sb, "  Big %.0fs", g.sched.Remaining(effectBigger))
	}
	if g.sched.Pending(effectSlow) {
		fmt.Fprintf(&sb, "  Slow %.0fs", g.sched.Remaining(effectSlow))
	}
	return sb.String()
}
