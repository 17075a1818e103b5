package pong

import (
	"fmt"

	"github.com/vovakirdan/microgames/internal/config"
	"github.com/vovakirdan/microgames/internal/core"
)

const hudHeight = 2

// layout maps the world onto the screen area inside the border, below the HUD.
func layout(cfg config.PongConfig, screenW, screenH int) core.Viewport {
	area := core.NewRect(1, hudHeight+1, max(screenW-2, 1), max(screenH-hudHeight-2, 1))
	return core.NewViewport(cfg.World.Width, cfg.World.Height, area)
}

// Render draws the court, paddles, ball and score.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.view = layout(g.cfg, dst.Width(), dst.Height())

	hud := fmt.Sprintf(" PONG  You %d : %d CPU   first to %d   [%s]",
		g.playerScore, g.aiScore, g.cfg.Gameplay.WinScore, g.cfg.Difficulty.Title())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	area := g.view.Area
	if area.W < 20 || area.H < 8 {
		dst.DrawOverlay("Window too small", "Need at least 22x12")
		return
	}
	dst.DrawBoxColor(core.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2), core.ColorGray)

	mid := g.view.CellX(g.cfg.World.Width / 2)
	for y := area.Y; y < area.Bottom(); y += 2 {
		dst.SetColor(mid, y, '┆', core.ColorGray)
	}

	pw, ph := g.cfg.Paddles.Width, g.cfg.Paddles.Height
	dst.DrawRectColor(g.view.CellRect(core.Box{X: 0, Y: g.playerY, W: pw, H: ph}), '█', core.ColorBrightWhite)
	dst.DrawRectColor(g.view.CellRect(core.Box{X: g.cfg.World.Width - pw, Y: g.aiY, W: pw, H: ph}), '█', core.ColorBrightRed)

	if g.ball.X >= 0 && g.ball.X <= g.cfg.World.Width {
		bx := min(g.view.CellX(g.ball.X), area.Right()-1)
		by := min(g.view.CellY(g.ball.Y), area.Bottom()-1)
		dst.SetColor(bx, by, '●', core.ColorBrightYellow)
	}

	switch g.phase.Phase() {
	case core.PhaseReady:
		dst.DrawOverlay("PONG", "Enter to serve  mouse or arrows to move")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "P resume  B menu")
	case core.PhaseWon:
		dst.DrawOverlay("You win!", fmt.Sprintf("%d : %d   R rematch  B menu", g.playerScore, g.aiScore))
	case core.PhaseGameOver:
		dst.DrawOverlay("CPU wins", fmt.Sprintf("%d : %d   R rematch  B menu", g.playerScore, g.aiScore))
	}
}
