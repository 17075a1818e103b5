package tetris

import (
	"fmt"

	"github.com/vovakirdan/microgames/internal/core"
)

const (
	hudHeight  = 2
	panelWidth = 14
)

// Render draws the well, the falling and ghost pieces and the side panels.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" TETRIS  Score: %d  Level: %d  Lines: %d", g.session.Score(), g.session.Level(), g.lines)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightMagenta)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	boardW := g.board.Width()*2 + 2
	boardH := g.board.Height() + 2
	needW, needH := boardW+panelWidth+1, boardH+hudHeight
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, boardW, boardH)
	dst.DrawBoxColor(frame, core.ColorGray)
	ox, oy := frame.X+1, frame.Y+1

	for y := range g.board.Height() {
		for x := range g.board.Width() {
			if k := g.board.At(x, y); k != KindNone {
				dst.DrawTextColor(ox+x*2, oy+y, "██", k.Color())
			}
		}
	}

	if !g.phase.Phase().Terminal() {
		for _, c := range g.Ghost().Cells() {
			if c.Y >= 0 {
				dst.DrawTextColor(ox+c.X*2, oy+c.Y, "░░", core.ColorGray)
			}
		}
		for _, c := range g.current.Cells() {
			if c.Y >= 0 {
				dst.DrawTextColor(ox+c.X*2, oy+c.Y, "██", g.current.Kind.Color())
			}
		}
	}

	px := frame.Right() + 1
	drawPanel(dst, px, frame.Y, "Next", g.next, true)
	drawPanel(dst, px, frame.Y+6, "Hold", g.held, g.hasHeld)
	dst.DrawText(px, frame.Y+12, "← → move")
	dst.DrawText(px, frame.Y+13, "↑ rotate")
	dst.DrawText(px, frame.Y+14, "↓ soft drop")
	dst.DrawText(px, frame.Y+15, "Space drop")
	dst.DrawText(px, frame.Y+16, "C hold")

	switch g.phase.Phase() {
	case core.PhaseReady:
		dst.DrawOverlay("TETRIS", "Enter to start")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "P resume  B menu")
	case core.PhaseGameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d  R restart  B menu", g.session.Score()))
	}
}

// drawPanel draws a small framed preview of p at its spawn shape.
func drawPanel(dst *core.Screen, x, y int, title string, p Piece, show bool) {
	dst.DrawBoxColor(core.NewRect(x, y, panelWidth, 6), core.ColorGray)
	dst.DrawText(x+2, y, " "+title+" ")
	if !show {
		return
	}
	for _, c := range (Piece{Kind: p.Kind, Shape: p.Shape}).Cells() {
		dst.DrawTextColor(x+2+c.X*2, y+1+c.Y, "██", p.Kind.Color())
	}
}
