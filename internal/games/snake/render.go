package snake

import (
	"fmt"

	"github.com/vovakirdan/microgames/internal/core"
)

const hudHeight = 2

// Render draws the board, the snake and the phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" SNAKE  Score: %d  Length: %d", g.session.Score(), len(g.snake))
	dst.DrawTextColor(0, 0, hud, core.ColorBrightGreen)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Each grid cell is two columns wide to keep the board square.
	boardW := g.cfg.Grid.Width*2 + 2
	boardH := g.cfg.Grid.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	frame := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBoxColor(frame, core.ColorGray)
	ox, oy := frame.X+1, frame.Y+1

	if g.food.X >= 0 {
		dst.DrawTextColor(ox+g.food.X*2, oy+g.food.Y, "()", core.ColorBrightRed)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		seg := g.snake[i]
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColor(ox+seg.X*2, oy+seg.Y, "██", color)
	}

	switch g.phase.Phase() {
	case core.PhaseReady:
		dst.DrawOverlay("SNAKE", "Arrow keys or Enter to start")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "P resume  B menu")
	case core.PhaseGameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d  R restart  B menu", g.session.Score()))
	case core.PhaseWon:
		dst.DrawOverlay("Board cleared!", fmt.Sprintf("Score %d  R restart  B menu", g.session.Score()))
	}
}
